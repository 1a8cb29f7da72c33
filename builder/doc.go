// SPDX-License-Identifier: MIT

// Package builder generates augmented test systems for the solver pipeline.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:         a function that mutates config before generation.
//     – config:         holds the RNG, the value range and the numeric context.
//   - Generators:
//     – RandomDominant: N×(N+1) matrix with a strictly dominant diagonal.
//
// Guarantees:
//
//   - Determinism: the same seed yields the same matrix on every platform.
//     Without WithSeed/WithRand a fixed default seed is used.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation errors wrap package sentinels (ErrTooSmall).
//   - Every generated row satisfies |a[i][i]| > Σ_{j≠i}|a[i][j]| exactly.
//
// See individual function documentation for complexity notes.
package builder
