package striter

import (
	"iter"

	"github.com/npillmayer/striter/cluster"
)

// Text is a segmented, immutable text.
//
// A Text owns a copy of its input. The number of segments is computed once,
// on construction. A Text may be shared between goroutines; cursors and
// sequences created from it may not.
type Text struct {
	buf   TextBuffer
	index Index
	total int
}

// New segments a copy of b. mode is one of "grapheme", "codepoint" or
// "byte"; an empty or unknown mode selects grapheme mode.
func New(b []byte, mode string) *Text {
	return NewWithConfig(b, Config{Mode: mode})
}

// FromString segments the bytes of s.
func FromString(s string, mode string) *Text {
	return NewFromBuffer(BufferFromString(s), Config{Mode: mode})
}

// NewWithConfig segments a copy of b as configured by conf.
func NewWithConfig(b []byte, conf Config) *Text {
	return NewFromBuffer(NewTextBuffer(b), conf)
}

// NewFromBuffer segments buf as configured by conf.
func NewFromBuffer(buf TextBuffer, conf Config) *Text {
	mode := ParseMode(conf.Mode)
	index := NewIndex(mode, conf.Patterns)
	t := &Text{
		buf:   buf,
		index: index,
		total: index.Count(buf.b),
	}
	tracer().Debugf("text of %d bytes has %d %s segments", buf.Len(), t.total, index.Mode())
	return t
}

// Iter creates a cursor over a copy of b, ready to iterate.
func Iter(b []byte, mode string) *Cursor {
	return New(b, mode).Cursor()
}

// Count returns the number of segments.
func (t *Text) Count() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Mode returns the effective segmentation mode. It differs from the requested
// mode only if grapheme mode had to fall back to codepoints.
func (t *Text) Mode() Mode {
	if t == nil {
		return DefaultMode
	}
	return t.index.Mode()
}

// Buffer returns the underlying text buffer.
func (t *Text) Buffer() TextBuffer {
	if t == nil {
		return TextBuffer{}
	}
	return t.buf
}

// At returns segment i. ok is false if i is not in [0,Count()).
func (t *Text) At(i int) (seg Segment, ok bool) {
	if t == nil || i < 0 || i >= t.total {
		return Segment{}, false
	}
	span, ok := t.index.SegmentAt(t.buf.b, i)
	if !ok {
		return Segment{}, false
	}
	return makeSegment(t.buf, span), true
}

// Cursor creates a fresh cursor positioned at the first segment.
func (t *Text) Cursor() *Cursor {
	if t == nil {
		t = &Text{index: byteIndex{}}
	}
	return &Cursor{text: t}
}

// Segments creates a fresh sequence of all segments.
func (t *Text) Segments() *Sequence {
	if t == nil {
		t = &Text{index: byteIndex{}}
	}
	return &Sequence{text: t}
}

// All iterates over all segments together with their indices.
func (t *Text) All() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		seq := t.Segments()
		for {
			i := seq.Index()
			seg, ok := seq.Next()
			if !ok || !yield(i, seg) {
				return
			}
		}
	}
}

// Strings returns all segments as strings.
func (t *Text) Strings() []string {
	out := make([]string, 0, t.Count())
	for _, seg := range t.All() {
		out = append(out, seg.String())
	}
	return out
}

// Config collects the settings for segmenting a text.
type Config struct {
	// Mode is the name of the segmentation mode, see ParseMode.
	Mode string
	// Patterns provides the grapheme matcher. If nil, the process-wide
	// cluster.DefaultPatterns is used.
	Patterns *cluster.PatternCache
}
