package striter

import (
	"github.com/npillmayer/striter/cluster"
	"github.com/npillmayer/striter/scalar"
)

// Mark is a known segment boundary: segment number Index starts at byte
// offset Pos. The zero Mark denotes the start of a buffer.
type Mark struct {
	Index int
	Pos   int
}

// Index answers "what is character i" for one segmentation mode.
//
// All methods operate on a raw byte slice which they never modify. Walking a
// buffer with Step from offset 0 yields contiguous, non-empty spans.
type Index interface {
	// Mode returns the effective segmentation mode.
	Mode() Mode
	// Count returns the number of segments in b.
	Count(b []byte) int
	// SegmentAt returns the span of segment i, if it exists.
	SegmentAt(b []byte, i int) (Span, bool)
	// Step returns the span of the segment starting at byte offset off.
	// off has to be a segment boundary.
	Step(b []byte, off int) (Span, bool)
	// Locate is like SegmentAt, but may resume scanning at mark from.
	Locate(b []byte, from Mark, i int) (Span, bool)
}

// NewIndex returns the index for mode. Grapheme indexes use the matcher of
// patterns, or the process-wide default if patterns is nil.
//
// If no grapheme matcher is available, NewIndex returns a codepoint index.
func NewIndex(mode Mode, patterns *cluster.PatternCache) Index {
	switch mode {
	case Byte:
		return byteIndex{}
	case Codepoint:
		return codepointIndex{}
	}
	if patterns == nil {
		patterns = cluster.DefaultPatterns()
	}
	m, ok := patterns.Matcher()
	if !ok {
		tracer().Infof("grapheme matcher unavailable, falling back to codepoints: %v",
			patterns.Err())
		return codepointIndex{}
	}
	return graphemeIndex{scanner: cluster.NewScanner(m)}
}

// --- Bytes -----------------------------------------------------------------

type byteIndex struct{}

func (byteIndex) Mode() Mode { return Byte }

func (byteIndex) Count(b []byte) int { return len(b) }

func (byteIndex) SegmentAt(b []byte, i int) (Span, bool) {
	if i < 0 || i >= len(b) {
		return Span{}, false
	}
	return Span{Pos: i, Len: 1}, true
}

func (x byteIndex) Step(b []byte, off int) (Span, bool) {
	return x.SegmentAt(b, off)
}

func (x byteIndex) Locate(b []byte, _ Mark, i int) (Span, bool) {
	return x.SegmentAt(b, i)
}

// --- Codepoints ------------------------------------------------------------

type codepointIndex struct{}

func (codepointIndex) Mode() Mode { return Codepoint }

func (codepointIndex) Count(b []byte) int {
	return scalar.Count(b)
}

func (x codepointIndex) SegmentAt(b []byte, i int) (Span, bool) {
	return x.Locate(b, Mark{}, i)
}

func (codepointIndex) Step(b []byte, off int) (Span, bool) {
	if off < 0 || off >= len(b) {
		return Span{}, false
	}
	return Span{Pos: off, Len: scalar.Width(b, off)}, true
}

func (codepointIndex) Locate(b []byte, from Mark, i int) (Span, bool) {
	if i < 0 || i >= len(b) {
		return Span{}, false
	}
	if from.Index > i || from.Pos < 0 || from.Pos > len(b) {
		from = Mark{}
	}
	off := from.Pos
	for n := from.Index; off < len(b); n++ {
		w := scalar.Width(b, off)
		if n == i {
			return Span{Pos: off, Len: w}, true
		}
		off += w
	}
	return Span{}, false
}

// --- Grapheme clusters -----------------------------------------------------

type graphemeIndex struct {
	scanner cluster.Scanner
}

func (graphemeIndex) Mode() Mode { return Grapheme }

func (x graphemeIndex) Count(b []byte) int {
	return x.scanner.Count(b)
}

func (x graphemeIndex) SegmentAt(b []byte, i int) (Span, bool) {
	pos, l, ok := x.scanner.At(b, i)
	return Span{Pos: pos, Len: l}, ok
}

func (x graphemeIndex) Step(b []byte, off int) (Span, bool) {
	end, ok := x.scanner.Step(b, off)
	if !ok {
		return Span{}, false
	}
	return Span{Pos: off, Len: end - off}, true
}

func (x graphemeIndex) Locate(b []byte, from Mark, i int) (Span, bool) {
	if from.Index > i || from.Pos < 0 || from.Pos > len(b) {
		from = Mark{}
	}
	pos, l, ok := x.scanner.From(b, from.Pos, from.Index, i)
	return Span{Pos: pos, Len: l}, ok
}
