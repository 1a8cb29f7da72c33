// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/simpleiter/numeric"
)

// MaxIterations is the hard cap on fixed-point rounds.
const MaxIterations = 10000

var (
	// ErrInvalidEpsilon is returned when the convergence threshold is nil,
	// non-finite or not strictly positive.
	ErrInvalidEpsilon = errors.New("solver: epsilon must be a positive finite decimal")

	// ErrNonConvergence is matched by every *NonConvergenceError.
	ErrNonConvergence = errors.New("solver: did not converge")
)

// NonConvergenceError reports that MaxIterations rounds ran without the step
// error dropping to ε. It carries the full diagnostics of the failed run.
type NonConvergenceError struct {
	Iterations int            // rounds performed (always MaxIterations)
	LastError  *apd.Decimal   // error of the final round
	History    []*apd.Decimal // one entry per round
}

// Error implements error.
func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("solver: did not converge within %d iterations, last error = %s", e.Iterations, e.LastError)
}

// Is makes errors.Is(err, ErrNonConvergence) succeed.
func (e *NonConvergenceError) Is(target error) bool { return target == ErrNonConvergence }

// Result is the outcome of a converged run.
type Result struct {
	// Solution is the final iterate x^k.
	Solution numeric.Vector
	// Iterations is the number of rounds performed (≥ 1).
	Iterations int
	// History holds the step error of every round, in order.
	History []*apd.Decimal
	// LastDelta is x^k - x^(k-1) (exact); nil when only one round ran.
	LastDelta numeric.Vector
	// Norm is the infinity norm of the iteration matrix C.
	Norm *apd.Decimal
}

// LastError returns the error of the final round.
func (r *Result) LastError() *apd.Decimal { return r.History[len(r.History)-1] }

// Round describes one completed fixed-point round, passed to observers.
type Round struct {
	Number  int            // 1-based round number
	Error   *apd.Decimal   // max_i |prev[i] - x[i]|
	Iterate numeric.Vector // x after the round; do not retain or mutate
}

// Option configures a Solver.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer func(Round)
}

func defaultOptions() options {
	return options{
		logger:   slog.New(slog.DiscardHandler),
		observer: func(Round) {},
	}
}

// WithLogger routes norm, per-round (Debug) and outcome (Info) records to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("solver: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithObserver registers a hook called once per round, after the error is
// recorded. A nil fn keeps the no-op hook.
func WithObserver(fn func(Round)) Option {
	return func(o *options) {
		if fn != nil {
			o.observer = fn
		}
	}
}

// ErrExactContext is returned when the solver is given an unrounded context:
// building C and d requires division.
var ErrExactContext = errors.New("solver: numeric context must have a finite precision")
