package scalar

import "unicode/utf8"

// Decode decodes the scalar value starting at byte offset off.
//
// Malformed or truncated encodings yield (utf8.RuneError, 1). An offset outside
// of b yields (utf8.RuneError, 0); callers walking a buffer stop before that.
func Decode(b []byte, off int) (r rune, width int) {
	if off < 0 || off >= len(b) {
		return utf8.RuneError, 0
	}
	if c := b[off]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	r, width = utf8.DecodeRune(b[off:])
	if width < 1 {
		width = 1
	}
	return r, width
}

// Width returns the number of bytes the scalar at off occupies.
// It is at least 1 for every offset inside b.
func Width(b []byte, off int) int {
	_, w := Decode(b, off)
	return w
}

// Valid reports whether a well-formed scalar encoding starts at off.
//
// An encoded U+FFFD is valid; only the 1-byte fallback is not.
func Valid(b []byte, off int) bool {
	r, w := Decode(b, off)
	if w == 0 {
		return false
	}
	return r != utf8.RuneError || w > 1
}

// Count returns the number of scalars in b, counting every malformed byte
// as a scalar of its own.
func Count(b []byte) int {
	n := 0
	for off := 0; off < len(b); off += Width(b, off) {
		n++
	}
	return n
}
