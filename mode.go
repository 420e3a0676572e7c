package striter

// Mode selects what counts as a character.
type Mode int

// Segmentation modes. Grapheme is the default.
const (
	Grapheme Mode = iota
	Codepoint
	Byte
)

// DefaultMode is used for empty or unrecognized mode names.
const DefaultMode = Grapheme

var modeNames = [...]string{
	Grapheme:  "grapheme",
	Codepoint: "codepoint",
	Byte:      "byte",
}

// ParseMode maps a mode name to a Mode. Matching is case-sensitive; any name
// other than "grapheme", "codepoint" or "byte" yields DefaultMode.
func ParseMode(name string) Mode {
	for m, n := range modeNames {
		if n == name {
			return Mode(m)
		}
	}
	if name != "" {
		tracer().Debugf("unknown segmentation mode %q, using %s", name, DefaultMode)
	}
	return DefaultMode
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "mode(?)"
	}
	return modeNames[m]
}
