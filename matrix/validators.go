// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for augmented-system checks.
//  - Keep the finder and the solver minimal by delegating nil/shape/dominance
//    checks here.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Dominance sums are EXACT (unrounded); the comparison is strict.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Dominance).

package matrix

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/simpleiter/numeric"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil (including a typed
// nil *Dense hidden inside the interface).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAugmented ensures m is a non-empty N×(N+1) augmented system.
//
// Errors: ErrNilMatrix, ErrBadShape.
// Complexity: O(1).
func ValidateAugmented(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateAugmented", err)
	}
	if m.Rows() == 0 {
		return validatorErrorf("ValidateAugmented", ErrBadShape)
	}
	if m.Cols() != m.Rows()+1 {
		return validatorErrorf("ValidateAugmented",
			fmt.Errorf("%dx%d, want %dx%d: %w", m.Rows(), m.Cols(), m.Rows(), m.Rows()+1, ErrBadShape))
	}

	return nil
}

// RowDominance returns |a[i][i]| and Σ_{j≠i, j<N} |a[i][j]| for row i of an
// augmented matrix, both computed exactly.
// Assumes ValidateAugmented(m) passed.
func RowDominance(m Matrix, i int) (diag, offSum *apd.Decimal, err error) {
	exact := numeric.Exact()
	n := m.Rows()
	offSum = new(apd.Decimal)
	var v *apd.Decimal
	for j := 0; j < n; j++ {
		if v, err = m.At(i, j); err != nil {
			return nil, nil, err
		}
		v.Abs(v)
		if j == i {
			diag = v
			continue
		}
		if offSum, err = exact.Add(offSum, v); err != nil {
			return nil, nil, err
		}
	}

	return diag, offSum, nil
}

// ValidateDiagonalDominance checks |a[i][i]| > Σ_{j≠i} |a[i][j]| for every
// row, strictly and without rounding. The first violating row is reported.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNotDiagonallyDominant.
// Complexity: O(N²).
func ValidateDiagonalDominance(m Matrix) error {
	if err := ValidateAugmented(m); err != nil {
		return validatorErrorf("ValidateDiagonalDominance", err)
	}
	for i := 0; i < m.Rows(); i++ {
		diag, sum, err := RowDominance(m, i)
		if err != nil {
			return validatorErrorf("ValidateDiagonalDominance", err)
		}
		if diag.Cmp(sum) <= 0 {
			return validatorErrorf("ValidateDiagonalDominance",
				fmt.Errorf("row %d: |%s| <= %s: %w", i, diag, sum, ErrNotDiagonallyDominant))
		}
	}

	return nil
}

// IsDiagonallyDominant is the boolean form of ValidateDiagonalDominance.
func IsDiagonallyDominant(m Matrix) bool { return ValidateDiagonalDominance(m) == nil }
