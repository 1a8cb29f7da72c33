// SPDX-License-Identifier: MIT
// Package: simpleiter/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/simpleiter/numeric"
)

// Option customizes a generator by mutating a config instance before
// generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs. The RNG is consumed, so do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Seed 0 maps to the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRange sets the half-width r of the uniform draw U(-r, r) used for
// every coefficient and right-hand side. Panics if r <= 0.
func WithRange(r float64) Option {
	if r <= 0 {
		panic("builder: WithRange(r<=0)")
	}

	return func(c *config) { c.valueRange = r }
}

// WithContext sets the numeric context drawn values are rounded to.
// Panics on an exact context: drawn binary fractions must be rounded.
func WithContext(ctx numeric.Context) Option {
	if ctx.IsExact() {
		panic("builder: WithContext(exact)")
	}

	return func(c *config) { c.ctx = ctx }
}
