// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions MUST return these sentinels and tests MUST check them
// via errors.Is. No function should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// never formatted at definition site; context is attached with matrixErrorf
// at the boundary and callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> value (NaN/Inf) -> structural (dominance).

var (
	// ErrBadShape is returned when a matrix is empty or, for an augmented
	// system, does not have exactly Rows()+1 columns.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilValue indicates that a nil *apd.Decimal was passed to Set or FromRows.
	ErrNilValue = errors.New("matrix: nil value")

	// ErrNonFinite signals a NaN or ±Inf decimal where finite values are required.
	ErrNonFinite = errors.New("matrix: NaN or Inf encountered")

	// ErrNotDiagonallyDominant signals that some row i violates the strict
	// condition |a[i][i]| > Σ_{j≠i} |a[i][j]|.
	ErrNotDiagonallyDominant = errors.New("matrix: not diagonally dominant")
)

// Operation name constants for unified error wrapping.
const (
	opNewDense     = "NewDense"
	opNewAugmented = "NewAugmented"
	opFromRows     = "FromRows"
	opFromStrings  = "FromStrings"
	opCopy         = "Copy"
	opAt           = "At"
	opSet          = "Set"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
