// SPDX-License-Identifier: MIT

package dominance

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/simpleiter/matrix"
)

// Method tags for error wrapping.
const (
	methodAssign  = "Assign"
	methodFind    = "FindPermutation"
	methodReorder = "Reorder"
	methodFDR     = "FindDominantReordering"
)

// noColumn marks "no candidate selected yet" during a row scan.
const noColumn = -1

// Assign runs the greedy row→diagonal-slot search on an augmented matrix
// with N ≥ 2 (N = 1 is accepted and yields the identity without checks).
//
// Implementation:
//   - Stage 1: validate the N×(N+1) shape.
//   - Stage 2: for each row in original order pick an unused column:
//     all-zero-elsewhere short-circuit first, else strictly greatest ratio.
//   - Stage 3: fail with ErrNoDominantPermutation when a row has no candidate.
//
// Determinism:
//   - Rows ascend, columns ascend; a later equal ratio never replaces the
//     running best, so ties keep the earliest column.
//
// Complexity: O(N³).
func Assign(m matrix.Matrix, opts ...Option) (Assignment, error) {
	if err := matrix.ValidateAugmented(m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodAssign, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()
	if n == 1 {
		return Assignment{0}, nil
	}

	assignment := make(Assignment, n)
	used := make([]bool, n)
	for row := 0; row < n; row++ {
		abs, err := absRow(m, row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodAssign, err)
		}
		best, ratio, err := o.bestColumn(abs, used)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", methodAssign, row, err)
		}
		if best == noColumn {
			return nil, fmt.Errorf("%s: row %d has no candidate column: %w", methodAssign, row, ErrNoDominantPermutation)
		}
		o.logger.Debug("dominance: row assigned",
			slog.Int("row", row),
			slog.Int("slot", best),
			slog.String("ratio", ratio),
		)
		assignment[row] = best
		used[best] = true
	}

	return assignment, nil
}

// bestColumn scans the unused columns for one row of absolute coefficients.
// It returns the chosen column (or noColumn) and a printable ratio ("inf"
// for the all-zero short-circuit).
func (o options) bestColumn(abs []*apd.Decimal, used []bool) (int, string, error) {
	n := len(abs)
	best := noColumn
	maxRatio := new(apd.Decimal) // selectable ratios must exceed 0
	for col := 0; col < n; col++ {
		if used[col] {
			continue
		}
		sum := new(apd.Decimal)
		allZeros := true
		var err error
		for k := 0; k < n; k++ {
			if k == col {
				continue
			}
			if sum, err = o.ctx.Add(sum, abs[k]); err != nil {
				return noColumn, "", err
			}
			if !abs[k].IsZero() {
				allZeros = false
			}
		}
		// Every other coefficient is zero: infinite ratio, first such column wins.
		if allZeros {
			return col, "inf", nil
		}
		if sum.IsZero() {
			continue
		}
		ratio, err := o.ctx.Quo(abs[col], sum)
		if err != nil {
			return noColumn, "", err
		}
		if ratio.Cmp(maxRatio) > 0 {
			maxRatio = ratio
			best = col
		}
	}

	return best, maxRatio.String(), nil
}

// absRow returns the exact absolute values of the N coefficients of row i.
func absRow(m matrix.Matrix, i int) ([]*apd.Decimal, error) {
	n := m.Rows()
	out := make([]*apd.Decimal, n)
	for j := 0; j < n; j++ {
		v, err := m.At(i, j)
		if err != nil {
			return nil, err
		}
		out[j] = v.Abs(v)
	}

	return out, nil
}

// FindPermutation returns the row ORDER produced by the greedy search.
//
// Behavior highlights:
//   - N = 1: identity, unless the sole coefficient is exactly zero
//     (ErrZeroDiagonal).
//   - N ≥ 2: Assign, then invert slots into an order.
//
// Errors: matrix.ErrBadShape, matrix.ErrNilMatrix, ErrZeroDiagonal,
// ErrNoDominantPermutation.
func FindPermutation(m matrix.Matrix, opts ...Option) (Permutation, error) {
	if err := matrix.ValidateAugmented(m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodFind, err)
	}
	if m.Rows() == 1 {
		v, err := m.At(0, 0)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodFind, err)
		}
		if v.IsZero() {
			return nil, fmt.Errorf("%s: %w", methodFind, ErrZeroDiagonal)
		}

		return Identity(1), nil
	}

	assignment, err := Assign(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFind, err)
	}

	return assignment.Order(), nil
}

// Reorder returns a new matrix whose row i is row order[i] of m.
// The input is never mutated; all elements are copied.
//
// Errors: matrix.ErrBadShape/ErrNilMatrix, ErrInvalidPermutation.
// Complexity: O(N²).
func Reorder(m matrix.Matrix, order Permutation) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodReorder, err)
	}
	if err := order.Validate(m.Rows()); err != nil {
		return nil, fmt.Errorf("%s: %w", methodReorder, err)
	}
	out, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReorder, err)
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(order[i], j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodReorder, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", methodReorder, err)
			}
		}
	}

	return out, nil
}

// FindDominantReordering is the entry point used before solving: it finds
// an order, applies it, and verifies strict dominance of the result.
//
// Behavior highlights:
//   - N = 1 bypasses Reorder and returns a copy of m.
//   - A greedy result that is not strictly dominant (e.g. tied ratios or a
//     zero row) is reported as ErrNoDominantPermutation wrapping
//     matrix.ErrNotDiagonallyDominant, so every successful result satisfies
//     |a[i][i]| > Σ_{j≠i}|a[i][j]| exactly.
func FindDominantReordering(m matrix.Matrix, opts ...Option) (*matrix.Dense, Permutation, error) {
	perm, err := FindPermutation(m, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodFDR, err)
	}

	var out *matrix.Dense
	if m.Rows() == 1 {
		out, err = matrix.Copy(m)
	} else {
		out, err = Reorder(m, perm)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodFDR, err)
	}

	if err = matrix.ValidateDiagonalDominance(out); err != nil {
		return nil, nil, fmt.Errorf("%s: order %v: %w: %w", methodFDR, perm, ErrNoDominantPermutation, err)
	}
	gatherOptions(opts...).logger.Info("dominance: reordering found",
		slog.Int("n", m.Rows()),
		slog.Any("order", []int(perm)),
		slog.Bool("identity", perm.IsIdentity()),
	)

	return out, perm, nil
}
