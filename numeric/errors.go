// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set.
// Every message is prefixed with "numeric: ..." for easy grepping; callers
// match with errors.Is. Context is attached with fmt.Errorf("%s: %w", op, err).

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrecision is returned when a rounding context is requested with
	// zero significant digits (use Exact for unrounded arithmetic).
	ErrInvalidPrecision = errors.New("numeric: precision must be > 0")

	// ErrUnknownRounding is returned by ParseRounding for an unsupported name.
	ErrUnknownRounding = errors.New("numeric: unknown rounding rule")

	// ErrParse indicates that a token is not a finite decimal number.
	ErrParse = errors.New("numeric: invalid decimal")

	// ErrArithmetic wraps a failed decimal operation (division by zero,
	// overflow, Quo in an exact context, NaN/Inf operands).
	ErrArithmetic = errors.New("numeric: arithmetic failure")
)

// numericErrorf tags err with the operation name and the arithmetic sentinel.
// Use only when err != nil.
func numericErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrArithmetic, err)
}
