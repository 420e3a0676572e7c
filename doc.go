/*
Package striter iterates over the characters of UTF-8 text.

What counts as a character is a matter of the segmentation mode:

	Byte       every byte is a character
	Codepoint  every Unicode scalar value is a character
	Grapheme   every extended grapheme cluster, i.e. every user-perceived
	           character, is a character (the default)

A Text owns a private copy of its input and knows the number of characters
in it. Characters may be addressed by index or visited with a Cursor, a
Sequence, or a range-over-func loop:

	text := striter.New([]byte("café 🌸"), "grapheme")
	for i, seg := range text.All() {
	    fmt.Printf("[%d] %q at %d\n", i, seg, seg.Pos())
	}

Segmentation never fails. Input is expected to be UTF-8, but malformed
sequences are tolerated: every byte which does not start a well-formed
scalar is a character of its own. If no grapheme matcher is available,
grapheme mode silently degrades to codepoint mode. Indices out of range are
reported as absence, not as errors.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package striter

import (
	"github.com/npillmayer/schuko/tracing"
)

// Version is the version of the segmentation engine.
const Version = "1.0.0"

// tracer writes to trace with key 'striter'
func tracer() tracing.Trace {
	return tracing.Select("striter")
}

// StrIterError is an error type for the striter module
type StrIterError string

func (e StrIterError) Error() string {
	return string(e)
}

// ErrBufferCompleted signals that a buffer builder has already completed a buffer
// and it's illegal to further add fragments.
const ErrBufferCompleted = StrIterError("forbidden to add fragments; buffer has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = StrIterError("illegal arguments")
