// SPDX-License-Identifier: MIT

// Package matrix: domain-facing interface. Errors and validators live in
// dedicated files (errors.go, validators.go).
package matrix

import "github.com/cockroachdb/apd/v3"

// Matrix represents a two-dimensional mutable array of decimal values.
//
// Ownership:
//   - At returns a copy; mutating it never changes the matrix.
//   - Set stores a copy; the caller keeps ownership of v.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves a copy of the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (*apd.Decimal, error)

	// Set assigns a copy of v at position (i, j).
	// Returns ErrOutOfRange on bad indices and ErrNilValue on nil v.
	Set(i, j int, v *apd.Decimal) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
