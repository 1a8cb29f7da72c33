// SPDX-License-Identifier: MIT
package numeric_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simpleiter/numeric"
)

func dec(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, err := numeric.Exact().Parse(s)
	require.NoError(t, err)

	return d
}

// requireDecEqual compares numerically, ignoring representation (1.0 == 1).
func requireDecEqual(t *testing.T, want string, got *apd.Decimal) {
	t.Helper()
	require.Zerof(t, dec(t, want).Cmp(got), "want %s, got %s", want, got)
}

func TestContexts_Constants(t *testing.T) {
	assert.Equal(t, uint32(50), numeric.Iteration().Precision())
	assert.Equal(t, numeric.HalfUp, numeric.Iteration().Rounding())
	assert.Equal(t, uint32(20), numeric.Search().Precision())
	assert.Equal(t, numeric.HalfUp, numeric.Search().Rounding())
	assert.True(t, numeric.Exact().IsExact())
	assert.True(t, numeric.Context{}.IsExact(), "zero value must be exact")
	assert.Equal(t, "50/half-up", numeric.Iteration().String())
	assert.Equal(t, "exact", numeric.Exact().String())
}

func TestNew_Validation(t *testing.T) {
	_, err := numeric.New(0, numeric.HalfUp)
	require.ErrorIs(t, err, numeric.ErrInvalidPrecision)

	_, err = numeric.New(10, numeric.Rounding(99))
	require.ErrorIs(t, err, numeric.ErrUnknownRounding)

	c, err := numeric.New(7, numeric.Floor)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), c.Precision())
	assert.Equal(t, numeric.Floor, c.Rounding())

	assert.Panics(t, func() { numeric.MustNew(0, numeric.HalfUp) })
}

func TestQuo_RoundsToPrecision(t *testing.T) {
	c := numeric.MustNew(5, numeric.HalfUp)
	q, err := c.Quo(dec(t, "2"), dec(t, "3"))
	require.NoError(t, err)
	requireDecEqual(t, "0.66667", q)

	down := numeric.MustNew(5, numeric.Down)
	q, err = down.Quo(dec(t, "2"), dec(t, "3"))
	require.NoError(t, err)
	requireDecEqual(t, "0.66666", q)
}

func TestQuo_Failures(t *testing.T) {
	_, err := numeric.Iteration().Quo(dec(t, "1"), dec(t, "0"))
	require.ErrorIs(t, err, numeric.ErrArithmetic)

	_, err = numeric.Exact().Quo(dec(t, "1"), dec(t, "4"))
	require.ErrorIs(t, err, numeric.ErrArithmetic)
}

func TestHalfUp_TiesAwayFromZero(t *testing.T) {
	c := numeric.MustNew(1, numeric.HalfUp)
	r, err := c.Round(dec(t, "2.5"))
	require.NoError(t, err)
	requireDecEqual(t, "3", r)

	r, err = c.Round(dec(t, "-2.5"))
	require.NoError(t, err)
	requireDecEqual(t, "-3", r)

	even := numeric.MustNew(1, numeric.HalfEven)
	r, err = even.Round(dec(t, "2.5"))
	require.NoError(t, err)
	requireDecEqual(t, "2", r)
}

func TestExact_AddIsUnrounded(t *testing.T) {
	a := dec(t, "1e30")
	b := dec(t, "1e-30")
	sum, err := numeric.Exact().Add(a, b)
	require.NoError(t, err)

	back, err := numeric.Exact().Sub(sum, a)
	require.NoError(t, err)
	requireDecEqual(t, "1e-30", back)

	// In a 20-digit context the small term is rounded away.
	rounded, err := numeric.Search().Add(a, b)
	require.NoError(t, err)
	requireDecEqual(t, "1e30", rounded)
}

func TestNegAbs(t *testing.T) {
	c := numeric.Iteration()
	n, err := c.Neg(dec(t, "4.5"))
	require.NoError(t, err)
	requireDecEqual(t, "-4.5", n)

	a, err := c.Abs(n)
	require.NoError(t, err)
	requireDecEqual(t, "4.5", a)
}

func TestParse(t *testing.T) {
	c := numeric.Iteration()
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"-0.25", "-0.25"},
		{"3e-7", "0.0000003"},
		{"+12.5", "12.5"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			d, err := c.Parse(tc.in)
			require.NoError(t, err)
			requireDecEqual(t, tc.want, d)
		})
	}

	for _, bad := range []string{"", "abc", "1,5", "NaN", "Infinity", "-Inf"} {
		t.Run("bad/"+bad, func(t *testing.T) {
			_, err := c.Parse(bad)
			require.ErrorIs(t, err, numeric.ErrParse)
		})
	}
}

func TestParse_RoundsToContext(t *testing.T) {
	c := numeric.MustNew(3, numeric.HalfUp)
	d, err := c.Parse("1.23456")
	require.NoError(t, err)
	requireDecEqual(t, "1.23", d)
}

func TestFromFloat64(t *testing.T) {
	d, err := numeric.Search().FromFloat64(0.5)
	require.NoError(t, err)
	requireDecEqual(t, "0.5", d)

	d, err = numeric.MustNew(3, numeric.HalfUp).FromFloat64(1.0 / 3.0)
	require.NoError(t, err)
	requireDecEqual(t, "0.333", d)
}

func TestContext_ResultsDoNotAliasOperands(t *testing.T) {
	a := dec(t, "2")
	b := dec(t, "3")
	sum, err := numeric.Iteration().Add(a, b)
	require.NoError(t, err)
	sum.SetInt64(100)
	requireDecEqual(t, "2", a)
	requireDecEqual(t, "3", b)
}
