package cluster

import "errors"

// Scanner walks a buffer cluster by cluster, driving a Matcher.
//
// Every successful step strictly increases the running offset:
// zero-width matches and matcher faults advance by exactly one byte.
type Scanner struct {
	m Matcher
}

// NewScanner creates a scanner for matcher m.
func NewScanner(m Matcher) Scanner {
	return Scanner{m: m}
}

// Step finds the cluster starting at byte offset off and returns its end.
//
// ok is false if off is at or beyond the end of b, or if the matcher reports
// ErrNoMatch. The latter ends a scan early.
func (s Scanner) Step(b []byte, off int) (end int, ok bool) {
	if off < 0 || off >= len(b) {
		return off, false
	}
	end, err := s.m.Match(b, off)
	switch {
	case errors.Is(err, ErrNoMatch):
		tracer().Debugf("grapheme scan: no match at offset %d of %d", off, len(b))
		return off, false
	case err != nil:
		tracer().Debugf("grapheme scan: fault at offset %d: %v", off, err)
		return off + 1, true
	case end <= off: // zero-width
		return off + 1, true
	case end > len(b):
		return len(b), true
	}
	return end, true
}

// Count returns the number of clusters in b.
func (s Scanner) Count(b []byte) int {
	n := 0
	for off, ok := s.Step(b, 0); ok; off, ok = s.Step(b, off) {
		n++
	}
	return n
}

// At returns the byte bounds of cluster number index.
//
// ok is false if index is negative, if index is not smaller than the byte
// length of b, or if the scan ends before reaching index.
func (s Scanner) At(b []byte, index int) (pos, length int, ok bool) {
	if index < 0 || index >= len(b) {
		return 0, 0, false
	}
	return s.From(b, 0, 0, index)
}

// From is like At, but resumes scanning at a known cluster boundary: cluster
// number start begins at byte offset off.
func (s Scanner) From(b []byte, off, start, index int) (pos, length int, ok bool) {
	if index < start || index >= start+len(b)-off {
		return 0, 0, false
	}
	for n := start; ; n++ {
		end, ok := s.Step(b, off)
		if !ok {
			return 0, 0, false
		}
		if n == index {
			return off, end - off, true
		}
		off = end
	}
}
