// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/simpleiter/dominance"
	"github.com/katalvlaran/simpleiter/matrix"
	"github.com/katalvlaran/simpleiter/report"
	"github.com/katalvlaran/simpleiter/solver"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// resolveFormat picks the flag value when set, else the configured one.
func (a *app) resolveFormat(flag string) (string, error) {
	f := flag
	if f == "" {
		f = a.cfg.Output.Format
	}
	switch f {
	case formatText, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want %s or %s)", f, formatText, formatYAML)
	}
}

// parseEpsilon parses a --epsilon value; ok is false when the flag is empty
// and no default ε is configured.
func (a *app) parseEpsilon(flag string) (eps *apd.Decimal, ok bool, err error) {
	if flag == "" {
		return a.cfg.EpsilonValue()
	}
	if eps, err = a.solveCtx.Parse(flag); err != nil {
		return nil, false, fmt.Errorf("--epsilon: %w", err)
	}
	if eps.Sign() <= 0 {
		return nil, false, fmt.Errorf("--epsilon %s: %w", eps, solver.ErrInvalidEpsilon)
	}

	return eps, true, nil
}

// run reorders m for dominance, solves it and writes the report.
func (a *app) run(w io.Writer, m *matrix.Dense, eps *apd.Decimal, format string) error {
	var opts []report.Option
	if a.noColor {
		opts = append(opts, report.WithPlain())
	}
	if format == formatText {
		if err := report.Matrix(w, m, opts...); err != nil {
			return err
		}
	}

	reordered, perm, err := dominance.FindDominantReordering(m,
		dominance.WithContext(a.searchCtx),
		dominance.WithLogger(a.logger),
	)
	if err != nil {
		return fmt.Errorf("no solution can be found: %w", err)
	}
	if !perm.IsIdentity() {
		a.logger.Info("rows reordered", slog.Any("order", []int(perm)))
	}

	res, err := solver.Solve(reordered, a.solveCtx, eps, solver.WithLogger(a.logger))
	if err != nil {
		return err
	}

	if format == formatYAML {
		return report.YAML(w, res, perm)
	}
	if _, err = fmt.Fprintln(w); err != nil {
		return err
	}

	return report.Text(w, res, opts...)
}
