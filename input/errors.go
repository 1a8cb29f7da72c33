// SPDX-License-Identifier: MIT

package input

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is returned when the stream ends before a required line.
	ErrUnexpectedEOF = errors.New("input: unexpected end of input")

	// ErrNotANumber is returned when a size or accuracy line does not parse.
	ErrNotANumber = errors.New("input: not a number")

	// ErrSizeOutOfRange is returned for a size outside 1..MaxSize.
	ErrSizeOutOfRange = errors.New("input: size out of range")

	// ErrInvalidAccuracy is returned for an accuracy that is not > 0.
	ErrInvalidAccuracy = errors.New("input: accuracy must be positive")

	// ErrTokenCount is returned when a matrix line does not hold N+1 values.
	ErrTokenCount = errors.New("input: wrong number of values")

	// ErrBadNumber is returned when a matrix token is not a finite decimal.
	ErrBadNumber = errors.New("input: invalid number")

	// ErrRead wraps a failure of the underlying stream.
	ErrRead = errors.New("input: read")
)

// Retryable reports whether err is a malformed-value error that a fresh
// line may fix. Stream failures and end of input are not retryable.
func Retryable(err error) bool {
	for _, target := range []error{ErrNotANumber, ErrSizeOutOfRange, ErrInvalidAccuracy, ErrTokenCount, ErrBadNumber} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// LineError locates a matrix acquisition error. Line and Column are 1-based
// positions inside the matrix block; Column is 0 when the whole line is at
// fault.
type LineError struct {
	Line   int
	Column int
	Token  string // offending token, if any
	Err    error
}

// Error implements error.
func (e *LineError) Error() string {
	switch {
	case e.Column > 0:
		return fmt.Sprintf("line %d, column %d: %q: %v", e.Line, e.Column, e.Token, e.Err)
	default:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
}

// Unwrap exposes the sentinel for errors.Is.
func (e *LineError) Unwrap() error { return e.Err }
