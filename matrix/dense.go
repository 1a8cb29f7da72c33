// SPDX-License-Identifier: MIT
// Package matrix provides the decimal storage used by the solver pipeline.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/simpleiter/numeric"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of decimal values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Elements are addressed in place and never copied by value.
type Dense struct {
	r, c int           // number of rows and columns
	data []apd.Decimal // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice (apd zero value is 0).
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}

	return &Dense{r: rows, c: cols, data: make([]apd.Decimal, rows*cols)}, nil
}

// NewAugmented creates an n×(n+1) zero matrix for an n-unknown system.
func NewAugmented(n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opNewAugmented, fmt.Errorf("n=%d: %w", n, ErrBadShape))
	}

	return NewDense(n, n+1)
}

// FromRows builds a Dense from a rectangular [][]*apd.Decimal, copying every
// element. Ragged or empty input yields ErrBadShape; nil cells ErrNilValue.
func FromRows(rows [][]*apd.Decimal) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrBadShape)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), m.c, ErrBadShape))
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}

// FromStrings parses a rectangular grid of decimal literals in ctx.
// Handy for fixtures: FromStrings(numeric.Iteration(), [][]string{{"4","1","9"}}).
func FromStrings(ctx numeric.Context, rows [][]string) (*Dense, error) {
	parsed := make([][]*apd.Decimal, len(rows))
	for i, row := range rows {
		parsed[i] = make([]*apd.Decimal, len(row))
		for j, s := range row {
			d, err := ctx.Parse(s)
			if err != nil {
				return nil, matrixErrorf(opFromStrings, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			parsed[i][j] = d
		}
	}

	return FromRows(parsed)
}

// MustFromStrings is FromStrings for tests and examples; it panics on error.
func MustFromStrings(ctx numeric.Context, rows [][]string) *Dense {
	m, err := FromStrings(ctx, rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Copy returns an independent *Dense holding the same values as m.
// It is the defensive-copy primitive used at component boundaries.
// Complexity: O(r*c).
func Copy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	// Fast path: *Dense → element-wise Set on the flat slice.
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opCopy, err)
			}
			out.data[i*out.c+j].Set(v)
		}
	}

	return out, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves a copy of the element at (row, col).
// Complexity: O(digits).
func (m *Dense) At(row, col int) (*apd.Decimal, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return nil, err
	}

	return new(apd.Decimal).Set(&m.data[idx]), nil
}

// Set stores a copy of v at (row, col).
// Errors: ErrOutOfRange, ErrNilValue, ErrNonFinite.
func (m *Dense) Set(row, col int, v *apd.Decimal) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf(opSet, row, col, ErrNilValue)
	}
	if v.Form != apd.Finite {
		return denseErrorf(opSet, row, col, ErrNonFinite)
	}
	m.data[idx].Set(v)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]apd.Decimal, len(m.data))}
	for i := range m.data {
		out.data[i].Set(&m.data[i])
	}

	return out
}

// Row returns a deep copy of row i as a vector.
func (m *Dense) Row(i int) (numeric.Vector, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make(numeric.Vector, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = new(apd.Decimal).Set(&m.data[i*m.c+j])
	}

	return out, nil
}

// ToRows returns a deep copy of all elements as [][]*apd.Decimal.
func (m *Dense) ToRows() [][]*apd.Decimal {
	out := make([][]*apd.Decimal, m.r)
	for i := range out {
		row, _ := m.Row(i) // i is always in range here
		out[i] = row
	}

	return out
}

// Equal reports whether m and o have the same shape and numerically equal
// elements (1.0 equals 1).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(&o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer: one bracketed row per line.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
