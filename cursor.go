package striter

// Cursor navigates a text by segment positions.
//
// A cursor is bound to one text and one segmentation mode. Its position ranges
// from 0 to Size(); position Size() is the exhausted state, one past the last
// segment. The cursor never modifies the underlying buffer.
//
// Sequential access is linear in the length of the text: the cursor remembers
// where the last segment it resolved starts and scans on from there.
type Cursor struct {
	text *Text
	pos  int
	mark Mark
}

// Current returns the segment at the cursor position.
//
// If the cursor is exhausted, ok is false.
func (c *Cursor) Current() (seg Segment, ok bool) {
	if c == nil {
		return Segment{}, false
	}
	return c.Peek(c.pos)
}

// Peek returns segment i without moving the cursor. Any i in [0,Size()) may be
// addressed, whether or not the cursor has visited it.
func (c *Cursor) Peek(i int) (seg Segment, ok bool) {
	if i < 0 || i >= c.Size() {
		return Segment{}, false
	}
	span, ok := c.text.index.Locate(c.text.buf.b, c.mark, i)
	if !ok {
		return Segment{}, false
	}
	c.mark = Mark{Index: i, Pos: span.Pos}
	return makeSegment(c.text.buf, span), true
}

// Key returns the current position, even if the cursor is exhausted.
func (c *Cursor) Key() int {
	if c == nil {
		return 0
	}
	return c.pos
}

// Valid reports whether the cursor is positioned at a segment.
func (c *Cursor) Valid() bool {
	return c != nil && c.pos < c.Size()
}

// Next advances the cursor by one segment. It is a no-op for an exhausted
// cursor.
func (c *Cursor) Next() {
	if c == nil || c.pos >= c.Size() {
		return
	}
	c.pos++
}

// Rewind moves the cursor back to the first segment.
func (c *Cursor) Rewind() {
	if c == nil {
		return
	}
	c.pos = 0
}

// Size returns the number of segments, independent of the cursor position.
func (c *Cursor) Size() int {
	if c == nil || c.text == nil {
		return 0
	}
	return c.text.total
}

// Mode returns the effective segmentation mode.
func (c *Cursor) Mode() Mode {
	if c == nil {
		return DefaultMode
	}
	return c.text.Mode()
}

// Text returns the text the cursor is bound to.
func (c *Cursor) Text() *Text {
	if c == nil {
		return nil
	}
	return c.text
}
