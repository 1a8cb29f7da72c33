// SPDX-License-Identifier: MIT
// Package numeric: Context and its arithmetic kernels.
//
// Purpose:
//   - Bind (precision, rounding) into one immutable value.
//   - Expose the handful of operations the solver and the search need, each
//     returning a freshly allocated result so operands are never aliased.
//
// Determinism:
//   - Results depend only on operands and the Context value; no global state.

package numeric

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Behavioral constants of the pipeline; tests rely on their literal values.
const (
	// IterationPrecision is the significant-digit precision used for solving.
	IterationPrecision uint32 = 50

	// SearchPrecision is the significant-digit precision of the dominance search.
	SearchPrecision uint32 = 20
)

// Operation tags for uniform error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opQuo   = "Quo"
	opNeg   = "Neg"
	opAbs   = "Abs"
	opRound = "Round"
	opParse = "Parse"
	opFloat = "FromFloat64"
)

// Context is an immutable rounding context. The zero value is the exact
// (unrounded) context: Add, Sub, Mul, Neg and Abs are exact, Quo fails.
type Context struct {
	precision uint32   // significant digits; 0 ⇒ unrounded
	rounding  Rounding // rule applied when precision > 0
}

// New returns a rounding context with the given precision and rule.
// Precision 0 is rejected with ErrInvalidPrecision; use Exact instead.
func New(precision uint32, rounding Rounding) (Context, error) {
	if precision == 0 {
		return Context{}, fmt.Errorf("New: %w", ErrInvalidPrecision)
	}
	if !rounding.valid() {
		return Context{}, fmt.Errorf("New: %s: %w", rounding, ErrUnknownRounding)
	}

	return Context{precision: precision, rounding: rounding}, nil
}

// MustNew is New for package-level constants; it panics on invalid input.
func MustNew(precision uint32, rounding Rounding) Context {
	c, err := New(precision, rounding)
	if err != nil {
		panic(err)
	}

	return c
}

// Iteration returns the 50-digit HALF_UP context used by the solver.
func Iteration() Context { return Context{precision: IterationPrecision, rounding: HalfUp} }

// Search returns the 20-digit HALF_UP context used by the dominance search.
func Search() Context { return Context{precision: SearchPrecision, rounding: HalfUp} }

// Exact returns the unrounded context.
func Exact() Context { return Context{} }

// Precision reports the number of significant digits (0 for Exact).
func (c Context) Precision() uint32 { return c.precision }

// Rounding reports the rounding rule.
func (c Context) Rounding() Rounding { return c.rounding }

// IsExact reports whether c performs no rounding.
func (c Context) IsExact() bool { return c.precision == 0 }

// String renders c as "<precision>/<rounding>" or "exact".
func (c Context) String() string {
	if c.IsExact() {
		return "exact"
	}

	return fmt.Sprintf("%d/%s", c.precision, c.rounding)
}

// apd materializes a private apd.Context for a single operation.
func (c Context) apd() *apd.Context {
	ac := apd.BaseContext // value copy; never mutate the package variable
	ac.Precision = c.precision
	ac.Rounding = c.rounding.rounder()

	return &ac
}

// binary runs one apd kernel into a fresh result.
func (c Context) binary(op string, fn func(ac *apd.Context, d, x, y *apd.Decimal) (apd.Condition, error), x, y *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	if _, err := fn(c.apd(), d, x, y); err != nil {
		return nil, numericErrorf(op, err)
	}

	return d, nil
}

// Add returns x + y rounded in c.
// Complexity: O(digits).
func (c Context) Add(x, y *apd.Decimal) (*apd.Decimal, error) {
	return c.binary(opAdd, (*apd.Context).Add, x, y)
}

// Sub returns x - y rounded in c.
func (c Context) Sub(x, y *apd.Decimal) (*apd.Decimal, error) {
	return c.binary(opSub, (*apd.Context).Sub, x, y)
}

// Mul returns x · y rounded in c.
func (c Context) Mul(x, y *apd.Decimal) (*apd.Decimal, error) {
	return c.binary(opMul, (*apd.Context).Mul, x, y)
}

// Quo returns x / y rounded in c.
// Errors: ErrArithmetic on y == 0 or when c is exact.
func (c Context) Quo(x, y *apd.Decimal) (*apd.Decimal, error) {
	if c.IsExact() {
		return nil, fmt.Errorf("%s: %w: exact context cannot divide", opQuo, ErrArithmetic)
	}

	return c.binary(opQuo, (*apd.Context).Quo, x, y)
}

// Neg returns -x rounded in c.
func (c Context) Neg(x *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	if _, err := c.apd().Neg(d, x); err != nil {
		return nil, numericErrorf(opNeg, err)
	}

	return d, nil
}

// Abs returns |x| rounded in c.
func (c Context) Abs(x *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	if _, err := c.apd().Abs(d, x); err != nil {
		return nil, numericErrorf(opAbs, err)
	}

	return d, nil
}

// Round returns x rounded to the precision of c (a copy for Exact).
func (c Context) Round(x *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	if c.IsExact() {
		return d.Set(x), nil
	}
	if _, err := c.apd().Round(d, x); err != nil {
		return nil, numericErrorf(opRound, err)
	}

	return d, nil
}

// Parse reads a finite decimal literal ("1", "-0.25", "3e-7") and rounds it
// to c. NaN and Infinity are rejected with ErrParse.
func (c Context) Parse(s string) (*apd.Decimal, error) {
	d, _, err := c.apd().NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", opParse, s, ErrParse)
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("%s(%q): not finite: %w", opParse, s, ErrParse)
	}

	return d, nil
}

// MustParse is Parse for literals in tests and examples; it panics on error.
func (c Context) MustParse(s string) *apd.Decimal {
	d, err := c.Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// FromFloat64 converts f exactly and then rounds it to c.
func (c Context) FromFloat64(f float64) (*apd.Decimal, error) {
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return nil, fmt.Errorf("%s(%g): %w", opFloat, f, ErrParse)
	}

	return c.Round(d)
}
