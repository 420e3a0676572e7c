package striter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/striter/cluster"
)

var modes = []string{"byte", "codepoint", "grapheme"}

var samples = []string{
	"",
	"Hello",
	"こんにちは",
	"🌸🌺🌻",
	"cafe\u0301",
	"caf\u00e9",
	"Hello🌍世界",
	"👨‍👩‍👧‍👦👨‍👩‍👧‍👦",
	"🇯🇵🇺🇸",
	"Hello\xff\xfe World",
	"Hello\xe3\x81 World",
	"こ\xff\xfeん",
	"\x80\x80\xc3",
}

func TestHelloCodepoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "striter")
	defer teardown()
	//
	text := FromString("Hello", "codepoint")
	if text.Count() != 5 {
		t.Fatalf("count = %d, want 5", text.Count())
	}
	want := []string{"H", "e", "l", "l", "o"}
	for i, w := range want {
		seg, ok := text.At(i)
		if !ok || seg.String() != w || seg.Pos() != i {
			t.Errorf("segment %d = (%q@%d,%v), want %q@%d", i, seg, seg.Pos(), ok, w, i)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	for _, mode := range modes {
		text := New(nil, mode)
		if text.Count() != 0 {
			t.Errorf("%s: count = %d, want 0", mode, text.Count())
		}
		c := text.Cursor()
		if c.Valid() {
			t.Errorf("%s: cursor on empty text is valid", mode)
		}
		if _, ok := c.Current(); ok {
			t.Errorf("%s: cursor on empty text has a current value", mode)
		}
	}
}

func TestSingleEmoji(t *testing.T) {
	emoji := "🌸"
	if n := FromString(emoji, "byte").Count(); n != 4 {
		t.Errorf("byte count = %d, want 4", n)
	}
	text := FromString(emoji, "codepoint")
	if text.Count() != 1 {
		t.Fatalf("codepoint count = %d, want 1", text.Count())
	}
	seg, _ := text.At(0)
	if seg.String() != emoji || seg.Len() != 4 {
		t.Errorf("segment 0 = %q (len %d), want all 4 bytes", seg, seg.Len())
	}
}

func TestCombiningMark(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "striter")
	defer teardown()
	//
	s := "e\u0301"
	if n := FromString(s, "grapheme").Count(); n != 1 {
		t.Errorf("grapheme count = %d, want 1", n)
	}
	if n := FromString(s, "codepoint").Count(); n != 2 {
		t.Errorf("codepoint count = %d, want 2", n)
	}
}

func TestUnknownModeIsGrapheme(t *testing.T) {
	for _, s := range samples {
		want := FromString(s, "grapheme").Strings()
		for _, mode := range []string{"nonsense", "", "Grapheme", "BYTE"} {
			text := FromString(s, mode)
			if text.Mode() != Grapheme {
				t.Errorf("mode %q parsed as %s", mode, text.Mode())
			}
			got := text.Strings()
			if !equalStrings(got, want) {
				t.Errorf("mode %q on %q: %q, want %q", mode, s, got, want)
			}
		}
	}
}

func TestByteModeIdentity(t *testing.T) {
	for _, s := range samples {
		text := FromString(s, "byte")
		if text.Count() != len(s) {
			t.Errorf("%q: count = %d, want %d", s, text.Count(), len(s))
		}
		for i := 0; i < len(s); i++ {
			seg, ok := text.At(i)
			if !ok || seg.Len() != 1 || seg.Bytes()[0] != s[i] {
				t.Errorf("%q: segment %d = %#v, want byte %#x", s, i, seg, s[i])
			}
		}
		if _, ok := text.At(len(s)); ok {
			t.Errorf("%q: segment %d should not exist", s, len(s))
		}
	}
}

func TestSegmentsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "striter")
	defer teardown()
	//
	for _, mode := range modes {
		for _, s := range samples {
			text := FromString(s, mode)
			var out bytes.Buffer
			n, prevEnd := 0, 0
			for i, seg := range text.All() {
				if i != n || seg.Pos() != prevEnd || seg.Len() < 1 {
					t.Fatalf("%s %q: segment %d = %#v not contiguous", mode, s, i, seg)
				}
				out.Write(seg.Bytes())
				n, prevEnd = n+1, seg.End()
			}
			if n != text.Count() {
				t.Errorf("%s %q: iterated %d segments, count is %d", mode, s, n, text.Count())
			}
			if out.String() != s {
				t.Errorf("%s %q: round trip yields %q", mode, s, out.String())
			}
		}
	}
}

func TestRandomAccessMatchesIteration(t *testing.T) {
	for _, mode := range modes {
		for _, s := range samples {
			text := FromString(s, mode)
			seq := text.Segments()
			for i := 0; ; i++ {
				want, ok := seq.Next()
				got, found := text.At(i)
				if ok != found {
					t.Fatalf("%s %q: At(%d) found=%v, sequence ok=%v", mode, s, i, found, ok)
				}
				if !ok {
					break
				}
				if got.Span() != want.Span() {
					t.Errorf("%s %q: At(%d) = %v, sequence says %v", mode, s, i, got.Span(), want.Span())
				}
			}
		}
	}
}

func TestModeCounts(t *testing.T) {
	s := "A🎉B"
	want := map[string]int{"grapheme": 3, "codepoint": 3, "byte": 6}
	for mode, n := range want {
		if c := FromString(s, mode).Count(); c != n {
			t.Errorf("%s count of %q = %d, want %d", mode, s, c, n)
		}
	}
	if n := FromString("こんにちは", "").Count(); n != 5 {
		t.Errorf("default count = %d, want 5", n)
	}
}

func TestInvalidUTF8Codepoints(t *testing.T) {
	text := FromString("こ\xff\xfeん", "codepoint")
	want := []string{"こ", "\xff", "\xfe", "ん"}
	if got := text.Strings(); !equalStrings(got, want) {
		t.Fatalf("segments = %q, want %q", got, want)
	}
}

func TestInputIsCopied(t *testing.T) {
	b := []byte("abc")
	text := New(b, "byte")
	b[0] = 'X'
	if seg, _ := text.At(0); seg.String() != "a" {
		t.Fatalf("text shares caller's buffer: segment 0 = %q", seg)
	}
	seg, _ := text.At(1)
	seg.Bytes()[0] = 'Y'
	if again, _ := text.At(1); again.String() != "b" {
		t.Fatalf("segment bytes alias the buffer")
	}
}

func TestGraphemeFallsBackToCodepoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "striter")
	defer teardown()
	//
	broken := cluster.NewPatternCache(func() (cluster.Matcher, error) {
		return nil, errors.New("no grapheme support")
	})
	text := NewWithConfig([]byte("cafe\u0301"), Config{Mode: "grapheme", Patterns: broken})
	if text.Mode() != Codepoint {
		t.Errorf("effective mode = %s, want codepoint", text.Mode())
	}
	if text.Count() != 5 {
		t.Errorf("count = %d, want 5 codepoints", text.Count())
	}
	if c := text.Cursor(); c.Mode() != Codepoint {
		t.Errorf("cursor mode = %s, want codepoint", c.Mode())
	}
}

// stopAfter matches single bytes up to a fixed offset and reports no match
// from there on.
type stopAfter int

func (s stopAfter) Match(b []byte, off int) (int, error) {
	if off >= int(s) || off >= len(b) {
		return off, cluster.ErrNoMatch
	}
	return off + 1, nil
}

func TestGraphemeEarlyStop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "striter")
	defer teardown()
	//
	patterns := cluster.NewPatternCache(func() (cluster.Matcher, error) {
		return stopAfter(3), nil
	})
	text := NewWithConfig([]byte("abcdef"), Config{Patterns: patterns})
	if text.Count() != 3 {
		t.Fatalf("count = %d, want 3", text.Count())
	}
	if got := text.Strings(); !equalStrings(got, []string{"a", "b", "c"}) {
		t.Fatalf("segments = %q, want [a b c]", got)
	}
	c := text.Cursor()
	n := 0
	for ; c.Valid(); c.Next() {
		n++
	}
	if n != 3 || c.Key() != 3 {
		t.Fatalf("cursor visited %d segments and stopped at %d, want 3/3", n, c.Key())
	}
	if _, ok := c.Peek(3); ok {
		t.Fatalf("segment behind early stop must not be addressable")
	}
}

func TestIterFreeFunction(t *testing.T) {
	c := Iter([]byte("ABC"), "byte")
	var got []string
	for c.Rewind(); c.Valid(); c.Next() {
		seg, _ := c.Current()
		got = append(got, seg.String())
	}
	if !equalStrings(got, []string{"A", "B", "C"}) {
		t.Fatalf("segments = %q", got)
	}
}

func TestNilText(t *testing.T) {
	var text *Text
	if text.Count() != 0 || text.Mode() != DefaultMode {
		t.Fatalf("nil text should be empty")
	}
	if _, ok := text.At(0); ok {
		t.Fatalf("nil text has no segments")
	}
	if c := text.Cursor(); c.Valid() {
		t.Fatalf("cursor of nil text is valid")
	}
	if len(text.Strings()) != 0 {
		t.Fatalf("nil text yields strings")
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"grapheme":  Grapheme,
		"codepoint": Codepoint,
		"byte":      Byte,
		"Byte":      Grapheme,
		"":          Grapheme,
		"bytes":     Grapheme,
	}
	for name, want := range cases {
		if m := ParseMode(name); m != want {
			t.Errorf("ParseMode(%q) = %s, want %s", name, m, want)
		}
	}
	for _, m := range []Mode{Grapheme, Codepoint, Byte} {
		if ParseMode(m.String()) != m {
			t.Errorf("mode %s does not survive String/ParseMode", m)
		}
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv(EnvMode, "codepoint")
	t.Setenv(EnvBackend, "no-such-backend")
	conf := ConfigFromEnvironment()
	if conf.Mode != "codepoint" {
		t.Errorf("mode = %q, want codepoint", conf.Mode)
	}
	if conf.Patterns != cluster.DefaultPatterns() {
		t.Errorf("unknown backend should select the default patterns")
	}
	t.Setenv(EnvBackend, "uax")
	if p, _ := cluster.PatternsFor("uax"); ConfigFromEnvironment().Patterns != p {
		t.Errorf("backend uax not selected")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMalformedByteAfterPrepend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "striter")
	defer teardown()
	//
	got := FromString("\u0600\xffx", "grapheme").Strings()
	if !equalStrings(got, []string{"\u0600", "\xff", "x"}) {
		t.Errorf("segments = %q, want malformed byte as a segment of its own", got)
	}
}

func TestReplacementCharacterKeepsCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "striter")
	defer teardown()
	//
	uax, err := cluster.PatternsFor(cluster.UAXBackend)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := uax.Matcher(); !ok {
		t.Skipf("uax matcher unavailable in this build: %v", uax.Err())
	}
	text := NewFromBuffer(BufferFromString("ok \ufffd done"), Config{Mode: "grapheme", Patterns: uax})
	if text.Count() != 9 || strings.Join(text.Strings(), "") != "ok \ufffd done" {
		t.Errorf("segments = %q, want all 9 graphemes", text.Strings())
	}
}
