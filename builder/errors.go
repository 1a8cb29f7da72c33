// SPDX-License-Identifier: MIT
// Package: simpleiter/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w via builderErrorf.
//   • Generators never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that the requested system size is below MinSize.
// Usage: if errors.Is(err, ErrTooSmall) { /* report invalid size */ }.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a decimal operation failed while building a
// row (for example a context too coarse to represent the drawn values).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the method context and a formatted detail:
// "<Method>: <detail>: <err>".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
