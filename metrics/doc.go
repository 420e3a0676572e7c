/*
Package metrics provides some pre-manufactured metrics on texts.

Measure collects per-mode counts, display width and malformed byte runs for
a text buffer in one call. Words and Lines locate items within a text and
report them as byte spans.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'striter'
func tracer() tracing.Trace {
	return tracing.Select("striter")
}
