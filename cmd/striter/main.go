/*
Command striter splits text into segments and prints them.

Text is taken from the command line, from a file (-f) or from an HTML
fragment (--html). Segments may be bytes, codepoints or grapheme clusters.

	striter segments -m grapheme "Hello 🌍"
	striter count -f README.md -V
	striter info

Multiple text arguments are joined with commas.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/striter"
	"github.com/npillmayer/striter/cluster"
	"github.com/npillmayer/striter/html"
	"github.com/npillmayer/striter/textfile"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/norm"
)

// tracer traces with key 'striter'
func tracer() tracing.Trace {
	return tracing.Select("striter")
}

func main() {
	initDisplay()

	commando.
		SetExecutableName("striter").
		SetVersion("v" + striter.Version).
		SetDescription("Split UTF-8 text into bytes, codepoints or grapheme clusters.")

	commando.
		Register("segments").
		SetDescription("Print the segments of a text, one per line, with position, length and display width.").
		SetShortDescription("print segments").
		AddArgument("text...", "text to segment", "").
		AddFlag("mode,m", "segmentation mode: grapheme|codepoint|byte (default from $STRITER_MODE)", commando.String, "-").
		AddFlag("backend,b", "grapheme backend: uniseg|uax|uax29 (default from $STRITER_BACKEND)", commando.String, "-").
		AddFlag("file,f", "read text from file instead of arguments", commando.String, "-").
		AddFlag("html", "extract text from HTML input", commando.Bool, nil).
		AddFlag("nfc,N", "normalize text to Unicode NFC before segmenting", commando.Bool, nil).
		AddFlag("hex,x", "print the bytes of every segment", commando.Bool, nil).
		AddFlag("names,n", "print the Unicode names of codepoints", commando.Bool, nil).
		AddFlag("trace,T", "trace level: Debug|Info|Error", commando.String, "Error").
		SetAction(runSegmentsCommand)

	commando.
		Register("count").
		SetDescription("Print the number of segments of a text. With --verbose, print text statistics.").
		SetShortDescription("count segments").
		AddArgument("text...", "text to segment", "").
		AddFlag("mode,m", "segmentation mode: grapheme|codepoint|byte (default from $STRITER_MODE)", commando.String, "-").
		AddFlag("backend,b", "grapheme backend: uniseg|uax|uax29 (default from $STRITER_BACKEND)", commando.String, "-").
		AddFlag("file,f", "read text from file instead of arguments", commando.String, "-").
		AddFlag("html", "extract text from HTML input", commando.Bool, nil).
		AddFlag("nfc,N", "normalize text to Unicode NFC before segmenting", commando.Bool, nil).
		AddFlag("verbose,V", "print statistics", commando.Bool, nil).
		AddFlag("trace,T", "trace level: Debug|Info|Error", commando.String, "Error").
		SetAction(runCountCommand)

	commando.
		Register("info").
		SetDescription("Print version information and the availability of grapheme backends.").
		SetShortDescription("version and backends").
		AddFlag("trace,T", "trace level: Debug|Info|Error", commando.String, "Error").
		SetAction(runInfoCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " i ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setupTracing(flags map[string]commando.FlagValue) {
	gtrace.CoreTracer = gologadapter.New()
	level := mustFlagString(flags["trace"], "trace")
	l := tracing.LevelError
	switch level {
	case "Debug":
		l = tracing.LevelDebug
	case "Info":
		l = tracing.LevelInfo
	case "Error":
	default:
		fatalf("invalid trace level: %s", level)
	}
	gtrace.CoreTracer.SetTraceLevel(l)
	tracer().SetTraceLevel(l)
}

// --- Commands --------------------------------------------------------------

func runSegmentsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	text := mustLoadText(args, flags)
	p := newPrinter(os.Stdout, ConfigFromTerminal())
	p.hex = mustFlagBool(flags["hex"], "hex")
	p.names = mustFlagBool(flags["names"], "names")
	p.overview(text)
	p.segments(text)
}

func runCountCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	text := mustLoadText(args, flags)
	fmt.Println(text.Count())
	if mustFlagBool(flags["verbose"], "verbose") {
		printStats(text, mustPatterns(flags, striter.ConfigFromEnvironment().Patterns))
	}
}

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	pterm.Info.Printf("striter version %s\n", striter.Version)
	pterm.Info.Printf("default mode %s, default backend %s\n", striter.DefaultMode, cluster.DefaultBackend)
	printBackends()
}

// --- Input -----------------------------------------------------------------

func mustLoadText(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) *striter.Text {
	buf, err := loadInput(args["text"].Value, mustFlagString(flags["file"], "file"),
		mustFlagBool(flags["html"], "html"))
	if err != nil {
		fatalf("%v", err)
	}
	if mustFlagBool(flags["nfc"], "nfc") {
		buf = striter.NewTextBuffer(norm.NFC.Bytes(buf.Bytes()))
	}
	conf := striter.ConfigFromEnvironment()
	if mode := strings.TrimSpace(mustFlagString(flags["mode"], "mode")); mode != "-" {
		conf.Mode = mode
	}
	conf.Patterns = mustPatterns(flags, conf.Patterns)
	text := striter.NewFromBuffer(buf, conf)
	if text.Mode().String() != conf.Mode {
		tracer().Infof("segmenting in %s mode", text.Mode())
	}
	return text
}

// loadInput returns the text of the file name, if given, or else arg.
// name "-" denotes no file.
func loadInput(arg string, name string, isHTML bool) (striter.TextBuffer, error) {
	var buf striter.TextBuffer
	name = strings.TrimSpace(name)
	if name != "" && name != "-" {
		var err error
		if buf, err = textfile.Load(context.Background(), name, 0); err != nil {
			return striter.TextBuffer{}, fmt.Errorf("cannot load %s: %w", name, err)
		}
	} else {
		buf = striter.BufferFromString(arg)
	}
	if isHTML {
		return html.TextFromHTML(buf.Reader())
	}
	return buf, nil
}

// mustPatterns returns the pattern cache selected by the backend flag, or
// dflt if the flag is not set.
func mustPatterns(flags map[string]commando.FlagValue, dflt *cluster.PatternCache) *cluster.PatternCache {
	backend := strings.TrimSpace(mustFlagString(flags["backend"], "backend"))
	if backend == "-" {
		return dflt
	}
	patterns, err := cluster.PatternsFor(backend)
	if err != nil {
		fatalf("%v", err)
	}
	return patterns
}

// --- Helpers ---------------------------------------------------------------

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Println(fmt.Sprintf(format, args...))
	os.Exit(1)
}
