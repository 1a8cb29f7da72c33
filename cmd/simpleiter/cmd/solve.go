// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simpleiter/input"
	"github.com/katalvlaran/simpleiter/matrix"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		file    string
		epsilon string
		format  string
	)
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Read a system and solve it",
		Long: `Read a system from stdin (interactive, with prompts and retries) or from
--file (the first error ends the run) and solve it.

Stream format, one item per line:
  N                       number of equations (1-20)
  ε                       required accuracy, > 0 (omitted when --epsilon
                          or a configured epsilon is given)
  a11 ... a1N b1          N lines of N+1 decimals
  ...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.solve(cmd, file, epsilon, format)
		},
	}
	solveCmd.Flags().StringVarP(&file, "file", "f", "", "read the system from this file instead of stdin")
	solveCmd.Flags().StringVarP(&epsilon, "epsilon", "e", "", "required accuracy (skips the accuracy line)")
	solveCmd.Flags().StringVar(&format, "format", "", "report format: text, yaml (default from config)")

	return solveCmd
}

func (a *app) solve(cmd *cobra.Command, file, epsilon, format string) error {
	format, err := a.resolveFormat(format)
	if err != nil {
		return err
	}
	eps, haveEps, err := a.parseEpsilon(epsilon)
	if err != nil {
		return err
	}

	var src io.Reader = cmd.InOrStdin()
	opts := []input.Option{
		input.WithMaxSize(a.cfg.MaxSize),
		input.WithContext(a.solveCtx),
	}
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		src = f
	} else {
		opts = append(opts, input.WithPrompt(cmd.ErrOrStderr()))
	}
	r := input.NewReader(src, opts...)

	errOut := cmd.ErrOrStderr()
	retry := func(err error) { fmt.Fprintf(errOut, "Error: %v; try again.\n", err) }

	n, err := input.Retry(r.Interactive(), retry, r.ReadSize)
	if err != nil {
		return err
	}
	if !haveEps {
		if eps, err = input.Retry[*apd.Decimal](r.Interactive(), retry, r.ReadAccuracy); err != nil {
			return err
		}
	}
	m, err := input.Retry(r.Interactive(), retry, func() (*matrix.Dense, error) { return r.ReadMatrix(n) })
	if err != nil {
		return fmt.Errorf("read matrix: %w", err)
	}

	return a.run(cmd.OutOrStdout(), m, eps, format)
}
