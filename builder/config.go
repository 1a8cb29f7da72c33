// SPDX-License-Identifier: MIT
// Package: simpleiter/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng        = rand.New(rand.NewSource(defaultSeed))
//   • valueRange = 10 (draws in U(-10, 10))
//   • ctx        = numeric.Iteration() (50 digits, half-up)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/simpleiter/numeric"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed  int64 = 1  // used when no RNG is configured or seed == 0
	defaultRange       = 10 // half-width of the uniform value draw
)

// config aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type config struct {
	rng        *rand.Rand      // source of every draw
	valueRange float64         // >0
	ctx        numeric.Context // rounding of drawn values
}

// newConfig constructs a config with deterministic defaults and applies all
// options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{
		valueRange: defaultRange,
		ctx:        numeric.Iteration(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultSeed)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
