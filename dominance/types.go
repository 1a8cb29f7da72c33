// SPDX-License-Identifier: MIT

package dominance

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/simpleiter/numeric"
)

var (
	// ErrZeroDiagonal is returned for a 1×2 system whose only coefficient is 0.
	ErrZeroDiagonal = errors.New("dominance: zero diagonal element")

	// ErrNoDominantPermutation is returned when the greedy search finds no
	// candidate column for some row, or when its result is not strictly
	// dominant.
	ErrNoDominantPermutation = errors.New("dominance: no diagonally dominant permutation found")

	// ErrInvalidPermutation marks an order that is not a bijection on 0..N-1.
	ErrInvalidPermutation = errors.New("dominance: invalid permutation")
)

// Permutation is a row ORDER: row i of the reordered matrix is original row p[i].
type Permutation []int

// Identity returns the identity order of length n.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate reports ErrInvalidPermutation unless p is a bijection on 0..n-1.
// Complexity: O(n).
func (p Permutation) Validate(n int) error {
	if len(p) != n {
		return fmt.Errorf("len=%d, want %d: %w", len(p), n, ErrInvalidPermutation)
	}
	seen := make([]bool, n)
	for i, r := range p {
		if r < 0 || r >= n || seen[r] {
			return fmt.Errorf("p[%d]=%d: %w", i, r, ErrInvalidPermutation)
		}
		seen[r] = true
	}

	return nil
}

// IsIdentity reports whether p leaves every row in place.
func (p Permutation) IsIdentity() bool {
	for i, r := range p {
		if i != r {
			return false
		}
	}

	return true
}

// Assignment maps each original row to the diagonal slot chosen for it.
type Assignment []int

// Order inverts the assignment: the row assigned to slot i becomes row i.
// Assumes a is a bijection (as produced by Assign).
func (a Assignment) Order() Permutation {
	order := make(Permutation, len(a))
	for row, slot := range a {
		order[slot] = row
	}

	return order
}

// Option customizes the search.
type Option func(*options)

type options struct {
	ctx    numeric.Context // context for sums and ratios
	logger *slog.Logger    // per-row decisions at Debug
}

func gatherOptions(opts ...Option) options {
	o := options{
		ctx:    numeric.Search(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext overrides the 20-digit search context.
// Panics on an exact context: ratios need a finite precision.
func WithContext(ctx numeric.Context) Option {
	if ctx.IsExact() {
		panic("dominance: WithContext: exact context cannot divide")
	}

	return func(o *options) { o.ctx = ctx }
}

// WithLogger routes search decisions to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("dominance: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}
