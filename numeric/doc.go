// SPDX-License-Identifier: MIT

// Package numeric is the rounding context of simpleiter: a fixed pair of
// significant-digit precision and rounding rule applied to every arithmetic
// result produced by the solver and the dominance search.
//
// What & Why:
//
//	Simple iteration is numerically sensitive: the number of rounds needed and
//	the error values reported depend on exactly how each intermediate result is
//	rounded. Context makes that policy an explicit, immutable value that is
//	threaded through every call instead of living in process-wide state.
//
// Contexts used by the pipeline:
//
//   - Iteration() - 50 significant digits, HALF_UP; builds C, d and iterates.
//   - Search()    - 20 significant digits, HALF_UP; dominance ratios and sums.
//   - Exact()     - no rounding; validation sums, differences and norms.
//
// Concurrency:
//
//	Context is a value type. Every method clones the underlying apd.Context
//	before use, so a single Context may be shared between goroutines.
//
// Usage:
//
//	ctx := numeric.Iteration()
//	q, err := ctx.Quo(a, b) // a/b rounded to 50 digits, half-up
package numeric
