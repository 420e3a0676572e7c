package striter

// Sequence is a restartable, forward-only stream of the segments of a text.
//
// Every call to Next computes a fresh segment; a sequence does not keep a
// "current" value around.
type Sequence struct {
	text *Text
	next Mark
}

// Next returns the next segment. ok is false at the end of the text.
func (s *Sequence) Next() (seg Segment, ok bool) {
	if s == nil || s.text == nil || s.next.Index >= s.text.total {
		return Segment{}, false
	}
	span, ok := s.text.index.Step(s.text.buf.b, s.next.Pos)
	if !ok {
		return Segment{}, false
	}
	s.next = Mark{Index: s.next.Index + 1, Pos: span.End()}
	return makeSegment(s.text.buf, span), true
}

// Index returns the index of the segment the next call to Next will return.
func (s *Sequence) Index() int {
	if s == nil {
		return 0
	}
	return s.next.Index
}

// Reset restarts the sequence at the first segment.
func (s *Sequence) Reset() {
	if s != nil {
		s.next = Mark{}
	}
}
