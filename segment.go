package striter

import "fmt"

// Span is a byte range inside a text buffer.
//
// Pos is the start byte offset, Len is the span length in bytes.
type Span struct {
	Pos int
	Len int
}

// End returns the byte offset just behind the span.
func (s Span) End() int {
	return s.Pos + s.Len
}

// Segment is a read-only view of one character of a text buffer.
//
// A segment is never empty. Its bytes are shared with the buffer and are
// handed out as copies only.
type Segment struct {
	span Span
	text []byte
}

func makeSegment(buf TextBuffer, span Span) Segment {
	return Segment{
		span: span,
		text: buf.b[span.Pos:span.End():span.End()],
	}
}

// Span returns the byte range of the segment within its buffer.
func (s Segment) Span() Span {
	return s.span
}

// Pos returns the byte offset of the segment within its buffer.
func (s Segment) Pos() int {
	return s.span.Pos
}

// Len returns the number of bytes in this segment.
func (s Segment) Len() int {
	return s.span.Len
}

// End returns the byte offset just behind the segment.
func (s Segment) End() int {
	return s.span.End()
}

// IsEmpty reports whether the segment has no bytes. This is true for the zero
// value only.
func (s Segment) IsEmpty() bool {
	return len(s.text) == 0
}

// Bytes returns a copied byte slice of the segment text.
func (s Segment) Bytes() []byte {
	c := make([]byte, len(s.text))
	copy(c, s.text)
	return c
}

// String returns the segment text.
func (s Segment) String() string {
	return string(s.text)
}

// GoString shows position and bytes, which helps with malformed input.
func (s Segment) GoString() string {
	return fmt.Sprintf("Segment{%d+%d % x}", s.span.Pos, s.span.Len, s.text)
}
