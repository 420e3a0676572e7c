package cluster

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"

	"github.com/npillmayer/striter/scalar"
)

// uaxWindow is the number of bytes handed to the UAX #29 breaker for a single
// match. It keeps the breaker on its compact short-string representation.
// Clusters longer than the window are split at the window edge.
const uaxWindow = 240

type uaxMatcher struct{}

// CompileUAX creates a matcher on top of the grapheme breaker of
// npillmayer/uax. It sets up the breaker's Unicode class tables, which is
// the expensive part.
func CompileUAX() (Matcher, error) {
	grapheme.SetupGraphemeClasses()
	m := uaxMatcher{}
	if err := selfTest(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uaxMatcher) Match(b []byte, off int) (end int, err error) {
	defer func() {
		if r := recover(); r != nil {
			end, err = off, fmt.Errorf("%w: %v", ErrMatcherFault, r)
		}
	}()
	if off < 0 || off >= len(b) {
		return off, ErrNoMatch
	}
	// The breaker reads U+FFFD as end of input, whether encoded or produced
	// by a malformed sequence. An encoded U+FFFD is a cluster of its own.
	if r, w := scalar.Decode(b, off); r == utf8.RuneError {
		if w == 1 {
			return off, ErrMalformed
		}
		return off + w, nil
	}
	end = off + uaxWindow
	if end > len(b) {
		end = len(b)
	}
	gstr := grapheme.StringFromBytes(b[off:end])
	if gstr.Len() == 0 {
		return off, ErrNoMatch
	}
	return validPrefix(b, off, off+len(gstr.Nth(0))), nil
}
