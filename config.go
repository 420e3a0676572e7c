package striter

import (
	"os"

	"github.com/npillmayer/striter/cluster"
)

// Environment variables consulted by ConfigFromEnvironment.
const (
	EnvMode    = "STRITER_MODE"
	EnvBackend = "STRITER_BACKEND"
)

// ConfigFromEnvironment creates a Config from the user environment.
//
// STRITER_MODE names the segmentation mode, STRITER_BACKEND the grapheme
// matcher back-end (see cluster.Backends). An unknown back-end is reported
// and replaced by the default one.
func ConfigFromEnvironment() Config {
	conf := Config{Mode: os.Getenv(EnvMode)}
	patterns, err := cluster.PatternsFor(os.Getenv(EnvBackend))
	if err != nil {
		tracer().Errorf("%s: %v", EnvBackend, err)
		patterns = cluster.DefaultPatterns()
	}
	conf.Patterns = patterns
	return conf
}
