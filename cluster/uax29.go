package cluster

import (
	"github.com/clipperhouse/uax29/v2/graphemes"

	"github.com/npillmayer/striter/scalar"
)

type uax29Matcher struct{}

// CompileUAX29 creates a matcher on top of the grapheme iterator of
// clipperhouse/uax29.
func CompileUAX29() (Matcher, error) {
	m := uax29Matcher{}
	if err := selfTest(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uax29Matcher) Match(b []byte, off int) (int, error) {
	if off < 0 || off >= len(b) {
		return off, ErrNoMatch
	}
	if !scalar.Valid(b, off) {
		return off, ErrMalformed
	}
	it := graphemes.FromBytes(b[off:])
	if !it.Next() {
		return off, ErrNoMatch
	}
	return validPrefix(b, off, off+len(it.Value())), nil
}
