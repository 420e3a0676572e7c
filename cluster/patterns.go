package cluster

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// PatternCache compiles a grapheme matcher on first use and shares it
// afterwards. It is safe for concurrent use; exactly one compilation happens,
// and after that no locking is involved.
//
// A cache whose compilation failed stays unavailable. Clients are expected to
// degrade to codepoint segmentation in that case.
type PatternCache struct {
	once    sync.Once
	done    atomic.Bool
	compile CompileFunc
	matcher Matcher
	err     error
}

// NewPatternCache creates a cache for matchers produced by compile.
// A nil compile function selects the default back-end.
func NewPatternCache(compile CompileFunc) *PatternCache {
	if compile == nil {
		compile = CompileUniseg
	}
	return &PatternCache{compile: compile}
}

var defaultPatterns = NewPatternCache(CompileUniseg)

// DefaultPatterns returns the process-wide pattern cache.
func DefaultPatterns() *PatternCache {
	return defaultPatterns
}

// Matcher returns the compiled matcher, compiling it on the first call.
// If the matcher is unavailable, ok is false.
func (pc *PatternCache) Matcher() (m Matcher, ok bool) {
	if pc == nil {
		return nil, false
	}
	pc.once.Do(pc.load)
	return pc.matcher, pc.matcher != nil
}

// Err returns the compile error, if any. It does not trigger compilation.
func (pc *PatternCache) Err() error {
	if pc == nil {
		return ErrPatternUnavailable
	}
	if !pc.Compiled() {
		return nil
	}
	return pc.err
}

// Compiled reports whether compilation has already taken place.
func (pc *PatternCache) Compiled() bool {
	return pc != nil && pc.done.Load()
}

func (pc *PatternCache) load() {
	defer pc.done.Store(true)
	m, err := pc.compile()
	if err == nil && m == nil {
		err = ErrPatternUnavailable
	}
	if err != nil {
		tracer().Errorf("grapheme pattern unavailable: %v", err)
		pc.err = err
		return
	}
	tracer().Debugf("grapheme pattern compiled")
	pc.matcher = m
}

var (
	uaxPatterns   = NewPatternCache(CompileUAX)
	uax29Patterns = NewPatternCache(CompileUAX29)
)

// PatternsFor returns the process-wide pattern cache of a matcher back-end.
// An empty name selects DefaultBackend.
func PatternsFor(backend string) (*PatternCache, error) {
	switch backend {
	case "", UnisegBackend:
		return defaultPatterns, nil
	case UAXBackend:
		return uaxPatterns, nil
	case UAX29Backend:
		return uax29Patterns, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}
