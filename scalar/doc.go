/*
Package scalar decodes single Unicode scalar values from UTF-8 byte buffers.

The decoder never fails. Whenever the byte at an offset does not start a
well-formed UTF-8 encoding, the scalar is reported as utf8.RuneError with a
width of exactly one byte. Walking a buffer with Width therefore always
terminates and visits every byte exactly once.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package scalar
