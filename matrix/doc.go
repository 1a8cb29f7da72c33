// SPDX-License-Identifier: MIT

// Package matrix offers the arbitrary-precision augmented matrix used by the
// dominance search and the simple-iteration solver.
//
// The matrix package provides:
//
//   - Dense: a row-major N×M grid of apd decimals with copy-in/copy-out
//     accessors, so no caller can alias solver state.
//   - Constructors: NewDense, NewAugmented (N×(N+1)), FromRows, FromStrings.
//   - Copy: the defensive deep copy taken at component boundaries.
//   - Validators: ValidateAugmented (shape), ValidateDiagonalDominance
//     (exact, strict, row-wise) and RowDominance.
//
// Columns 0..N-1 of an augmented matrix are coefficients; column N is the
// right-hand side.
package matrix
