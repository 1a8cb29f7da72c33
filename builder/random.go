// SPDX-License-Identifier: MIT
// Package: simpleiter/builder
//
// random.go - random strictly diagonally dominant augmented systems.

package builder

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/simpleiter/matrix"
	"github.com/katalvlaran/simpleiter/numeric"
)

// MethodRandomDominant is the error-context token of RandomDominant.
const MethodRandomDominant = "RandomDominant"

// MinSize is the smallest system RandomDominant accepts.
const MinSize = 1

// RandomDominant returns an n×(n+1) augmented matrix whose coefficient part
// is strictly row-diagonally dominant.
//
// Implementation:
//   - Stage 1: per row draw v ∈ U(-r, r) and set a[i][i] = |v + r·(n-1)|.
//   - Stage 2: draw every off-diagonal coefficient and the right-hand side
//     from U(-r, r); accumulate Σ|a[i][j]| exactly.
//   - Stage 3: if a[i][i] ≤ Σ, redraw w and set a[i][i] = Σ + |w| + 1 (exact).
//
// Draws are taken row by row in column order (diagonal first), so a seed
// fixes the whole matrix.
//
// Errors: ErrTooSmall (n < MinSize), ErrConstructFailed (decimal failure).
// Complexity: O(n²) draws and additions.
func RandomDominant(n int, opts ...Option) (*matrix.Dense, error) {
	if n < MinSize {
		return nil, builderErrorf(MethodRandomDominant, ErrTooSmall, "n=%d < %d", n, MinSize)
	}
	cfg := newConfig(opts...)

	m, err := matrix.NewAugmented(n)
	if err != nil {
		return nil, builderErrorf(MethodRandomDominant, err, "n=%d", n)
	}
	for i := 0; i < n; i++ {
		if err = cfg.fillRow(m, i); err != nil {
			return nil, builderErrorf(MethodRandomDominant, err, "row %d", i)
		}
	}

	return m, nil
}

// fillRow writes row i of m following the three stages of RandomDominant.
func (c config) fillRow(m *matrix.Dense, i int) error {
	n := m.Rows()
	exact := numeric.Exact()

	v, err := c.draw()
	if err != nil {
		return err
	}
	shift, err := c.ctx.FromFloat64(c.valueRange * float64(n-1))
	if err != nil {
		return err
	}
	diag, err := c.ctx.Add(v, shift)
	if err != nil {
		return err
	}
	diag.Abs(diag)

	rowSum := new(apd.Decimal)
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		if v, err = c.draw(); err != nil {
			return err
		}
		if err = m.Set(i, j, v); err != nil {
			return err
		}
		if rowSum, err = exact.Add(rowSum, new(apd.Decimal).Abs(v)); err != nil {
			return err
		}
	}

	rhs, err := c.draw()
	if err != nil {
		return err
	}
	if err = m.Set(i, n, rhs); err != nil {
		return err
	}

	if diag.Cmp(rowSum) <= 0 {
		w, err := c.draw()
		if err != nil {
			return err
		}
		margin, err := exact.Add(new(apd.Decimal).Abs(w), apd.New(1, 0))
		if err != nil {
			return err
		}
		if diag, err = exact.Add(rowSum, margin); err != nil {
			return err
		}
	}

	return m.Set(i, i, diag)
}

// draw returns one value from U(-r, r), converted exactly from binary and
// rounded to the configured context.
func (c config) draw() (*apd.Decimal, error) {
	f := c.rng.Float64()*c.valueRange*2 - c.valueRange
	d, err := c.ctx.FromFloat64(f)
	if err != nil {
		return nil, builderErrorf("draw", ErrConstructFailed, "%g: %v", f, err)
	}

	return d, nil
}
