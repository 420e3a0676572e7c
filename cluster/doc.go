/*
Package cluster finds extended grapheme cluster boundaries in UTF-8 buffers.

A Matcher recognizes one grapheme cluster anchored at a byte offset. Matchers
are expensive to set up and are therefore compiled once and shared through a
PatternCache. A Scanner drives a matcher over a buffer, cluster by cluster.

Three matcher back-ends are available:

	uniseg   rivo/uniseg, the default
	uax      the UAX #29 grapheme breaker of npillmayer/uax
	uax29    the grapheme iterator of clipperhouse/uax29

A cluster never contains a malformed byte; matchers end a cluster before it.

Scanning never fails. Malformed input and matcher faults are absorbed as
1-byte clusters. A matcher reporting ErrNoMatch ends the scan early; bytes
after that point are not part of any cluster. This is a defined boundary
condition, not an error, and it is not retried.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package cluster

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'striter'
func tracer() tracing.Trace {
	return tracing.Select("striter")
}

var (
	// ErrNoMatch signals that a matcher did not find a cluster at an offset.
	ErrNoMatch = errors.New("cluster: no match")
	// ErrMalformed signals a matcher fault caused by malformed UTF-8.
	ErrMalformed = errors.New("cluster: malformed UTF-8")
	// ErrMatcherFault signals an internal failure of a matcher.
	ErrMatcherFault = errors.New("cluster: matcher fault")
	// ErrPatternUnavailable signals that a grapheme matcher could not be compiled.
	ErrPatternUnavailable = errors.New("cluster: grapheme pattern unavailable")
	// ErrUnknownBackend signals an unsupported matcher back-end name.
	ErrUnknownBackend = errors.New("cluster: unknown matcher backend")
)
