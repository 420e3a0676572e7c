package metrics

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/striter"
)

// Words returns the spans of the words of text, in logical order.
//
// A word is a maximal run of segments not starting with a white-space rune.
// Words follow the segmentation mode of text: in grapheme mode a combining
// mark following a space belongs to the space's segment and therefore never
// starts a word.
func Words(text *striter.Text) []striter.Span {
	spans := make([]striter.Span, 0, 8)
	inWord := false
	for _, seg := range text.All() {
		if isSpace(seg) {
			inWord = false
			continue
		}
		if inWord {
			spans[len(spans)-1].Len += seg.Len()
			continue
		}
		spans = append(spans, seg.Span())
		inWord = true
	}
	return spans
}

func isSpace(seg striter.Segment) bool {
	r, width := utf8.DecodeRuneInString(seg.String())
	if r == utf8.RuneError && width <= 1 {
		return false
	}
	return unicode.IsSpace(r)
}

// lineBreak matches the mandatory line breaks of UAX #14.
var lineBreak = regexp.MustCompile("\r\n|[\n\v\f\r\u0085\u2028\u2029]")

// Lines returns the spans of the lines of buf, excluding line terminators.
//
// Consecutive line breaks delimit empty lines. Text after the last line break
// is a line of its own, if not empty.
func Lines(buf striter.TextBuffer) []striter.Span {
	b := buf.Bytes()
	spans := make([]striter.Span, 0, 8)
	start := 0
	for _, loc := range lineBreak.FindAllIndex(b, -1) {
		spans = append(spans, striter.Span{Pos: start, Len: loc[0] - start})
		start = loc[1]
	}
	if start < len(b) {
		spans = append(spans, striter.Span{Pos: start, Len: len(b) - start})
	}
	return spans
}
