// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/simpleiter/matrix"
	"github.com/katalvlaran/simpleiter/numeric"
	"github.com/katalvlaran/simpleiter/solver"
)

// errWriter collects the first write error so render code stays linear.
type errWriter struct {
	w   *bufio.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err == nil {
		_, e.err = fmt.Fprintf(e.w, format, args...)
	}
}

func (e *errWriter) flush() error {
	if e.err != nil {
		return e.err
	}

	return e.w.Flush()
}

// Matrix writes the augmented matrix under a heading, one row per line.
func Matrix(w io.Writer, m *matrix.Dense, opts ...Option) error {
	o := gatherOptions(opts...)
	ew := &errWriter{w: bufio.NewWriter(w)}
	ew.printf("%s\n", o.header("Matrix:"))
	ew.printf("%s", m.String())

	return ew.flush()
}

// Text writes the full report of a converged run.
//
// Layout:
//
//	Iteration matrix norm (∞): <norm>
//
//	=== Solution ===
//	Iterations: <k>
//	Achieved accuracy: <e_k>
//
//	Unknowns:
//	x1 = ...
//
//	Error per iteration (max norm):
//	Iteration 1: ...
//
//	Last step (x^k - x^(k-1)):      only when k > 1
//	Δx1 = ...
func Text(w io.Writer, res *solver.Result, opts ...Option) error {
	if res == nil {
		return fmt.Errorf("report: Text: nil result")
	}
	o := gatherOptions(opts...)
	ew := &errWriter{w: bufio.NewWriter(w)}

	ew.printf("%s %s\n", o.label("Iteration matrix norm (∞):"), o.value(numeric.Format(res.Norm)))
	ew.printf("\n%s\n", o.header("=== Solution ==="))
	ew.printf("%s %d\n", o.label("Iterations:"), res.Iterations)
	ew.printf("%s %s\n", o.label("Achieved accuracy:"), o.value(numeric.Format(res.LastError())))

	ew.printf("\n%s\n", o.header("Unknowns:"))
	for i, x := range res.Solution {
		ew.printf("x%d = %s\n", i+1, o.value(numeric.Format(x)))
	}

	ew.printf("\n%s\n", o.header("Error per iteration (max norm):"))
	for i, e := range res.History {
		ew.printf("Iteration %d: %s\n", i+1, numeric.Format(e))
	}

	if res.Iterations > 1 && res.LastDelta != nil {
		ew.printf("\n%s\n", o.header("Last step (x^k - x^(k-1)):"))
		for i, d := range res.LastDelta {
			ew.printf("Δx%d = %s\n", i+1, numeric.Format(d))
		}
	}

	return ew.flush()
}
