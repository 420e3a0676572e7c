package cluster

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/npillmayer/striter/scalar"
)

// Matcher recognizes a single extended grapheme cluster.
//
// Match returns the end offset of the cluster starting at off. A matcher
// returns ErrNoMatch if no cluster starts at off; every other error is
// treated as a fault by the Scanner.
type Matcher interface {
	Match(b []byte, off int) (end int, err error)
}

// CompileFunc creates a matcher. It is called at most once per PatternCache.
type CompileFunc func() (Matcher, error)

// Backend names accepted by Compiler.
const (
	UnisegBackend = "uniseg"
	UAXBackend    = "uax"
	UAX29Backend  = "uax29"
)

// DefaultBackend is the back-end of the process-wide pattern cache.
const DefaultBackend = UnisegBackend

// Compiler returns the compile function for a matcher back-end.
// An empty name selects DefaultBackend.
func Compiler(backend string) (CompileFunc, error) {
	switch backend {
	case "", UnisegBackend:
		return CompileUniseg, nil
	case UAXBackend:
		return CompileUAX, nil
	case UAX29Backend:
		return CompileUAX29, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// Backends lists the names of all matcher back-ends.
func Backends() []string {
	return []string{UnisegBackend, UAXBackend, UAX29Backend}
}

// --- uniseg ----------------------------------------------------------------

type unisegMatcher struct{}

// CompileUniseg creates a matcher on top of rivo/uniseg.
func CompileUniseg() (Matcher, error) {
	m := unisegMatcher{}
	if err := selfTest(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (unisegMatcher) Match(b []byte, off int) (int, error) {
	if off < 0 || off >= len(b) {
		return off, ErrNoMatch
	}
	if !scalar.Valid(b, off) {
		return off, ErrMalformed
	}
	c, _, _, _ := uniseg.FirstGraphemeCluster(b[off:], -1)
	return validPrefix(b, off, off+len(c)), nil
}

// validPrefix shortens the cluster [off,end) to end before its first malformed
// byte. The scalar at off has to be well-formed.
func validPrefix(b []byte, off, end int) int {
	for p := off + scalar.Width(b, off); p < end; p += scalar.Width(b, p) {
		if !scalar.Valid(b, p) {
			return p
		}
	}
	return end
}

// --- Self test -------------------------------------------------------------

// probes are inputs which a grapheme-aware matcher has to recognize as
// a single cluster. A codepoint-by-codepoint matcher fails on each of them.
var probes = []string{
	"e\u0301",              // base letter + combining acute
	"\U0001F1EF\U0001F1F5", // regional indicator pair (flag JP)
	"\U0001F44B\U0001F3FD", // waving hand + skin tone modifier
	"\r\n",
}

func selfTest(m Matcher) error {
	for _, p := range probes {
		b := []byte(p)
		end, err := m.Match(b, 0)
		if err != nil {
			return fmt.Errorf("%w: probe %q: %v", ErrPatternUnavailable, p, err)
		}
		if end != len(b) {
			return fmt.Errorf("%w: probe %q matched %d of %d bytes",
				ErrPatternUnavailable, p, end, len(b))
		}
	}
	return nil
}
