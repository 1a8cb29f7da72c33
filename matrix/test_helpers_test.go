// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and the validators.

package matrix_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simpleiter/matrix"
	"github.com/katalvlaran/simpleiter/numeric"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the interface (non-*Dense) paths of code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustGrid parses a grid of literals in the exact context or fails the test.
func MustGrid(t *testing.T, rows ...[]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromStrings(numeric.Exact(), rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) *apd.Decimal {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// D parses a literal exactly.
func D(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, err := numeric.Exact().Parse(s)
	require.NoError(t, err)

	return d
}

// RequireDec asserts numeric equality of got and the literal want.
func RequireDec(t *testing.T, want string, got *apd.Decimal) {
	t.Helper()
	require.Zerof(t, D(t, want).Cmp(got), "want %s, got %s", want, got)
}
