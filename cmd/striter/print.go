package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/striter"
	"github.com/npillmayer/striter/cluster"
	"github.com/npillmayer/striter/metrics"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
	"golang.org/x/term"
)

// Config holds display parameters for segment output.
type Config struct {
	LineWidth int // line length in terminal cells
}

// ConfigFromTerminal checks whether stdout is a terminal, and if so it reads
// the terminal's width and sets Config.LineWidth accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	}
	tracer().Debugf("setting line length to %d cells", config.LineWidth)
	return config
}

// printer writes segments to out, alternating colors between neighbours.
type printer struct {
	out     io.Writer
	config  *Config
	palette []*color.Color
	invalid *color.Color
	hex     bool // print the bytes of segments
	names   bool // print the Unicode names of codepoints
}

func newPrinter(out io.Writer, config *Config) *printer {
	if config == nil {
		config = &Config{LineWidth: 65}
	}
	return &printer{
		out:    out,
		config: config,
		palette: []*color.Color{
			color.New(color.FgBlue),
			color.New(color.FgMagenta),
		},
		invalid: color.New(color.BgRed, color.FgWhite),
	}
}

func (p *printer) colorFor(i int, seg striter.Segment) *color.Color {
	if !utf8.Valid(seg.Bytes()) {
		return p.invalid
	}
	return p.palette[i%len(p.palette)]
}

// overview prints the text with alternately colored segments, wrapped at
// the configured line width.
func (p *printer) overview(text *striter.Text) {
	cells := 0
	for i, seg := range text.All() {
		w := max(metrics.SegmentWidth(seg), 1)
		if cells > 0 && cells+w > p.config.LineWidth {
			fmt.Fprintln(p.out)
			cells = 0
		}
		p.colorFor(i, seg).Fprint(p.out, visible(seg))
		cells += w
	}
	if cells > 0 {
		fmt.Fprintln(p.out)
	}
	fmt.Fprintf(p.out, "%d %s segments\n", text.Count(), text.Mode())
}

// segments prints one line per segment: index, byte span, display width and
// the segment itself.
func (p *printer) segments(text *striter.Text) {
	for i, seg := range text.All() {
		fmt.Fprintf(p.out, "%5d  %6d+%-2d  w=%d  ", i, seg.Pos(), seg.Len(), metrics.SegmentWidth(seg))
		p.colorFor(i, seg).Fprint(p.out, visible(seg))
		if p.hex {
			fmt.Fprintf(p.out, "  [% x]", seg.Bytes())
		}
		if p.names {
			fmt.Fprintf(p.out, "  %s", strings.Join(names(seg), ", "))
		}
		fmt.Fprintln(p.out)
	}
}

// visible returns a printable rendition of a segment. Segments with
// control characters or malformed bytes are quoted.
func visible(seg striter.Segment) string {
	s := seg.String()
	if !utf8.ValidString(s) {
		return strconv.Quote(s)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return strconv.Quote(s)
		}
	}
	return s
}

// names returns codepoint labels for the runes of seg, like "U+00E9 LATIN
// SMALL LETTER E WITH ACUTE". Malformed bytes are labelled as such.
func names(seg striter.Segment) []string {
	b := seg.Bytes()
	labels := make([]string, 0, 2)
	for len(b) > 0 {
		r, w := utf8.DecodeRune(b)
		if r == utf8.RuneError && w <= 1 {
			labels = append(labels, fmt.Sprintf("<malformed 0x%02X>", b[0]))
			b = b[1:]
			continue
		}
		name := runenames.Name(r)
		if name == "" {
			name = "<unnamed>"
		}
		labels = append(labels, fmt.Sprintf("U+%04X %s", r, name))
		b = b[w:]
	}
	return labels
}

// --- Tables ----------------------------------------------------------------

func printStats(text *striter.Text, patterns *cluster.PatternCache) {
	buf := text.Buffer()
	stats := metrics.Measure(buf, patterns)
	data := [][]string{
		{"Measure", "Value"},
		{"bytes", strconv.Itoa(stats.Bytes)},
		{"codepoints", strconv.Itoa(stats.Codepoints)},
		{stats.Segmentation.String() + " segments", strconv.Itoa(stats.Graphemes)},
		{"display width", strconv.Itoa(stats.Width)},
		{"words", strconv.Itoa(len(metrics.Words(text)))},
		{"lines", strconv.Itoa(len(metrics.Lines(buf)))},
		{"malformed runs", strconv.Itoa(len(stats.Invalid))},
		{"NFC", strconv.FormatBool(stats.NFC)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printBackends() {
	data := [][]string{
		{"Backend", "Default", "Available", "Remark"},
	}
	for _, name := range cluster.Backends() {
		row := []string{name, "", "yes", ""}
		if name == cluster.DefaultBackend {
			row[1] = "*"
		}
		patterns, err := cluster.PatternsFor(name)
		if err == nil {
			if _, ok := patterns.Matcher(); !ok {
				err = patterns.Err()
			}
		}
		if err != nil {
			row[2], row[3] = "no", err.Error()
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
