// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"log/slog"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/simpleiter/matrix"
	"github.com/katalvlaran/simpleiter/numeric"
)

// Method tags for error wrapping.
const (
	methodNew       = "solver.New"
	methodSolve     = "solver.Solve"
	methodIteration = "solver.IterationMatrix"
	methodConstants = "solver.Constants"
	methodNorm      = "solver.Norm"
)

// Solver owns a private copy of a validated, strictly dominant augmented
// system together with the numeric context and threshold of the run.
// A Solver is immutable after New; Solve may be called repeatedly.
type Solver struct {
	a    *matrix.Dense
	n    int
	ctx  numeric.Context
	eps  *apd.Decimal
	opts options
}

// New validates m and takes a deep copy of it.
//
// Validation order: nil → shape → ε → context → dominance (exact, strict).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrBadShape, ErrInvalidEpsilon,
// ErrExactContext, matrix.ErrNotDiagonallyDominant.
// Complexity: O(N²).
func New(m matrix.Matrix, ctx numeric.Context, eps *apd.Decimal, opts ...Option) (*Solver, error) {
	if err := matrix.ValidateAugmented(m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	if eps == nil || eps.Form != apd.Finite || eps.Sign() <= 0 {
		return nil, fmt.Errorf("%s: ε=%v: %w", methodNew, eps, ErrInvalidEpsilon)
	}
	if ctx.IsExact() {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrExactContext)
	}

	a, err := matrix.Copy(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	if err = matrix.ValidateDiagonalDominance(a); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver{
		a:    a,
		n:    a.Rows(),
		ctx:  ctx,
		eps:  new(apd.Decimal).Set(eps),
		opts: o,
	}, nil
}

// Solve is the one-shot form of New followed by (*Solver).Solve.
func Solve(m matrix.Matrix, ctx numeric.Context, eps *apd.Decimal, opts ...Option) (*Result, error) {
	s, err := New(m, ctx, eps, opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve()
}

// Size returns N, the number of unknowns.
func (s *Solver) Size() int { return s.n }

// Epsilon returns a copy of the convergence threshold.
func (s *Solver) Epsilon() *apd.Decimal { return new(apd.Decimal).Set(s.eps) }

// IterationMatrix returns C with C[i][j] = -a[i][j]/a[i][i] for j ≠ i and a
// zero diagonal. Divisions are rounded in the solver context; zero
// coefficients stay exactly zero.
// Complexity: O(N²).
func (s *Solver) IterationMatrix() (*matrix.Dense, error) {
	c, err := matrix.NewDense(s.n, s.n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodIteration, err)
	}
	var i, j int
	for i = 0; i < s.n; i++ {
		aii, err := s.a.At(i, i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodIteration, err)
		}
		for j = 0; j < s.n; j++ {
			if i == j {
				continue
			}
			aij, err := s.a.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodIteration, err)
			}
			if aij.IsZero() {
				continue
			}
			q, err := s.ctx.Quo(aij.Neg(aij), aii)
			if err != nil {
				return nil, fmt.Errorf("%s: C[%d][%d]: %w", methodIteration, i, j, err)
			}
			if err = c.Set(i, j, q); err != nil {
				return nil, fmt.Errorf("%s: %w", methodIteration, err)
			}
		}
	}

	return c, nil
}

// Constants returns d with d[i] = b[i]/a[i][i], rounded in the solver context.
// Complexity: O(N).
func (s *Solver) Constants() (numeric.Vector, error) {
	d := make(numeric.Vector, s.n)
	for i := 0; i < s.n; i++ {
		aii, err := s.a.At(i, i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodConstants, err)
		}
		bi, err := s.a.At(i, s.n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodConstants, err)
		}
		if d[i], err = s.ctx.Quo(bi, aii); err != nil {
			return nil, fmt.Errorf("%s: d[%d]: %w", methodConstants, i, err)
		}
	}

	return d, nil
}

// Norm returns the infinity norm of C: max over rows of Σ_j |C[i][j]|,
// summed exactly.
func (s *Solver) Norm() (*apd.Decimal, error) {
	c, err := s.IterationMatrix()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNorm, err)
	}

	return infinityNorm(c.ToRows())
}

// infinityNorm is max_i Σ_j |rows[i][j]| in exact arithmetic.
func infinityNorm(rows [][]*apd.Decimal) (*apd.Decimal, error) {
	exact := numeric.Exact()
	norm := new(apd.Decimal)
	for i, row := range rows {
		sum := new(apd.Decimal)
		var err error
		for _, v := range row {
			if sum, err = exact.Add(sum, new(apd.Decimal).Abs(v)); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		}
		if sum.Cmp(norm) > 0 {
			norm = sum
		}
	}

	return norm, nil
}

// Solve runs the fixed-point iteration.
//
// Implementation:
//   - Stage 1: build C and d; compute and log ‖C‖∞ (diagnostic only).
//   - Stage 2: x⁰ = d; for k = 1..MaxIterations: prev = x, x = C·prev + d,
//     e_k = max_i |prev[i] - x[i]| (exact), record e_k, notify the observer,
//     stop when e_k ≤ ε.
//   - Stage 3: on success return Result; after MaxIterations rounds without
//     e_k ≤ ε return *NonConvergenceError. A run whose final allowed round
//     meets ε converges.
//
// Complexity: O(k·N²) decimal operations for k rounds.
func (s *Solver) Solve() (*Result, error) {
	log := s.opts.logger
	c, err := s.IterationMatrix()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}
	d, err := s.Constants()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, err)
	}
	cRows := c.ToRows()
	norm, err := infinityNorm(cRows)
	if err != nil {
		return nil, fmt.Errorf("%s: norm: %w", methodSolve, err)
	}
	log.Info("solver: iteration matrix ready",
		slog.Int("n", s.n),
		slog.String("norm", numeric.Format(norm)),
		slog.Bool("contraction", norm.Cmp(apd.New(1, 0)) < 0),
		slog.String("context", s.ctx.String()),
		slog.String("epsilon", s.eps.String()),
	)

	exact := numeric.Exact()
	current := d.Clone()
	history := make([]*apd.Decimal, 0, 64)
	var prev numeric.Vector
	for k := 1; k <= MaxIterations; k++ {
		prev = current
		cx, err := s.matVec(cRows, prev)
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", methodSolve, k, err)
		}
		if current, err = s.ctx.AddVec(cx, d); err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", methodSolve, k, err)
		}
		e, err := exact.MaxAbsDiff(prev, current)
		if err != nil {
			return nil, fmt.Errorf("%s: round %d: %w", methodSolve, k, err)
		}
		history = append(history, e)
		s.opts.observer(Round{Number: k, Error: e, Iterate: current})
		log.Debug("solver: round", slog.Int("round", k), slog.String("error", numeric.Format(e)))

		if e.Cmp(s.eps) <= 0 {
			return s.converged(current, prev, history, norm)
		}
	}

	last := history[len(history)-1]
	log.Info("solver: not converged",
		slog.Int("iterations", MaxIterations),
		slog.String("last_error", numeric.Format(last)),
	)

	return nil, &NonConvergenceError{Iterations: MaxIterations, LastError: last, History: history}
}

// converged assembles the Result of a successful run.
func (s *Solver) converged(x, prev numeric.Vector, history []*apd.Decimal, norm *apd.Decimal) (*Result, error) {
	res := &Result{
		Solution:   x,
		Iterations: len(history),
		History:    history,
		Norm:       norm,
	}
	if res.Iterations > 1 {
		delta, err := numeric.Exact().SubVec(x, prev)
		if err != nil {
			return nil, fmt.Errorf("%s: delta: %w", methodSolve, err)
		}
		res.LastDelta = delta
	}
	s.opts.logger.Info("solver: converged",
		slog.Int("iterations", res.Iterations),
		slog.String("error", numeric.Format(res.LastError())),
	)

	return res, nil
}

// matVec returns C·v; each product and partial sum is rounded in the solver
// context, accumulating from zero in column order.
func (s *Solver) matVec(c [][]*apd.Decimal, v numeric.Vector) (numeric.Vector, error) {
	out := make(numeric.Vector, s.n)
	for i := 0; i < s.n; i++ {
		acc := new(apd.Decimal)
		for j := 0; j < s.n; j++ {
			p, err := s.ctx.Mul(c[i][j], v[j])
			if err != nil {
				return nil, fmt.Errorf("C[%d][%d]·x[%d]: %w", i, j, j, err)
			}
			if acc, err = s.ctx.Add(acc, p); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		}
		out[i] = acc
	}

	return out, nil
}
