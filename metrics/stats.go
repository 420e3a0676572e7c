package metrics

import (
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/striter"
	"github.com/npillmayer/striter/cluster"
	"github.com/npillmayer/striter/scalar"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/text/unicode/norm"
)

// Stats holds measurements of a text buffer.
type Stats struct {
	Bytes      int            // length in bytes
	Codepoints int            // number of codepoint segments
	Graphemes  int            // number of segments in Segmentation mode
	Width      int            // display width in terminal cells
	Invalid    []striter.Span // maximal runs of malformed bytes
	NFC        bool           // text is in Unicode normalization form C

	// Segmentation is Grapheme, unless the grapheme patterns were
	// unavailable and segmentation fell back to Codepoint.
	Segmentation striter.Mode
}

// Valid reports whether the measured buffer is well-formed UTF-8.
func (s Stats) Valid() bool {
	return len(s.Invalid) == 0
}

var setupClasses sync.Once

// Measure computes statistics for buf. Graphemes are found with patterns,
// where nil selects the default pattern cache.
//
// Width is the sum of the display widths of all grapheme segments, using
// UAX #11 rules in a Latin context. A segment containing malformed bytes
// counts as one cell.
func Measure(buf striter.TextBuffer, patterns *cluster.PatternCache) Stats {
	stats := Stats{
		Bytes:      buf.Len(),
		Codepoints: striter.NewFromBuffer(buf, striter.Config{Mode: "codepoint"}).Count(),
	}
	text := striter.NewFromBuffer(buf, striter.Config{Mode: "grapheme", Patterns: patterns})
	stats.Segmentation = text.Mode()
	for _, seg := range text.All() {
		stats.Graphemes++
		stats.Width += SegmentWidth(seg)
	}
	stats.Invalid = InvalidSpans(buf)
	stats.NFC = stats.Valid() && norm.NFC.IsNormal(buf.Bytes())
	tracer().Debugf("metrics: %d bytes, %d codepoints, %d graphemes, width %d, %d invalid runs",
		stats.Bytes, stats.Codepoints, stats.Graphemes, stats.Width, len(stats.Invalid))
	return stats
}

// SegmentWidth returns the display width of seg in terminal cells, using
// UAX #11 rules in a Latin context. Malformed segments have width 1.
func SegmentWidth(seg striter.Segment) (w int) {
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	s := seg.String()
	if !utf8.ValidString(s) {
		return 1
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("metrics: cannot measure width of %q: %v", s, r)
			w = 1
		}
	}()
	return uax11.StringWidth(grapheme.StringFromString(s), uax11.LatinContext)
}

// InvalidSpans returns the maximal runs of bytes in buf which do not start a
// well-formed UTF-8 sequence, in ascending order.
func InvalidSpans(buf striter.TextBuffer) []striter.Span {
	b := buf.Bytes()
	var spans []striter.Span
	for off := 0; off < len(b); off += scalar.Width(b, off) {
		if scalar.Valid(b, off) {
			continue
		}
		if n := len(spans); n > 0 && spans[n-1].End() == off {
			spans[n-1].Len++
			continue
		}
		spans = append(spans, striter.Span{Pos: off, Len: 1})
	}
	return spans
}
