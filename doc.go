// SPDX-License-Identifier: MIT

// Package simpleiter solves square linear systems A·x = b with the simple
// iteration (fixed-point) method in arbitrary-precision decimal arithmetic.
//
// The method converges for row-diagonally-dominant matrices, so a system is
// first reordered by a greedy row search and only then iterated.
//
// Under the hood, everything is organized under these subpackages:
//
//	numeric/    - rounding contexts (precision + rule) and decimal vectors
//	matrix/     - augmented N×(N+1) decimal storage and validators
//	dominance/  - greedy dominance-seeking row permutation and reordering
//	solver/     - fixed-point iteration with error history and diagnostics
//	builder/    - random strictly dominant test systems
//	input/      - size, accuracy and matrix acquisition from text streams
//	report/     - text and YAML rendering of results
//	config/     - TOML/YAML/env configuration for the command
//	cmd/simpleiter - the command-line front end (solve, random, version)
//
// Quick start:
//
//	ctx := numeric.Iteration()
//	m := matrix.MustFromStrings(ctx, [][]string{{"1", "5", "2"}, {"4", "1", "9"}})
//	reordered, _, err := dominance.FindDominantReordering(m)
//	if err != nil { /* no dominant order */ }
//	res, err := solver.Solve(reordered, ctx, ctx.MustParse("1e-6"))
//	if err != nil { /* not converged */ }
//	_ = report.Text(os.Stdout, res)
//
// Determinism: the same matrix, ε and context always produce the same row
// order, iteration count and error history.
package simpleiter
