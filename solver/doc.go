// SPDX-License-Identifier: MIT

// Package solver implements the simple-iteration (fixed-point) method for a
// strictly row-diagonally-dominant augmented system A·x = b.
//
// What:
//
//   - Rewrites each equation as x[i] = Σ_j C[i][j]·x[j] + d[i] with
//     C[i][j] = -a[i][j]/a[i][i] (zero diagonal) and d[i] = b[i]/a[i][i].
//   - Starts from x⁰ = d and repeats x = C·x + d until the max-norm step
//     max_i |x_prev[i] - x[i]| drops to ε or MaxIterations rounds ran.
//
// Why:
//
//   - Strict dominance bounds the infinity norm of C below 1, which makes the
//     map a contraction. The norm is computed and reported but never gates
//     the iteration.
//
// Numerics:
//
//   - Divisions, products and iterate sums are rounded in the caller's
//     numeric.Context (50 digits, half-up is the usual choice).
//   - The norm, the dominance check and every step error are exact.
//
// Determinism & lifecycle:
//
//   - The same matrix, context and ε always give the same iterates, count and
//     error history. New takes a deep copy; the caller's matrix is never read
//     again. C, d and iterates are local to one Solve call.
//
// Errors:
//
//   - matrix.ErrBadShape, matrix.ErrNilMatrix, matrix.ErrNotDiagonallyDominant,
//     ErrInvalidEpsilon (construction).
//   - *NonConvergenceError matching ErrNonConvergence (Solve).
package solver
