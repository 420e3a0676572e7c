/*
Package textfile loads text files into immutable text buffers for segmentation.

Files are read in fragments by a background goroutine. Loaded fragments are
broadcast to the loader, which stages them with a striter.Builder and finalizes
the buffer once every fragment has arrived. Load itself is synchronous.

Fragment borders are byte offsets; they may well fall inside a multi-byte
UTF-8 sequence, which is fine, as a buffer is segmented only after it is
complete.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'striter'
func tracer() tracing.Trace {
	return tracing.Select("striter")
}
