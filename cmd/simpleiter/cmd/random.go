// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/simpleiter/builder"
)

func newRandomCmd(a *app) *cobra.Command {
	var (
		size    int
		seed    int64
		epsilon string
		format  string
	)
	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random diagonally dominant system and solve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			return a.random(cmd, size, seed, epsilon, format)
		},
	}
	randomCmd.Flags().IntVarP(&size, "size", "n", 0, "number of equations (1-20)")
	randomCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: current time)")
	randomCmd.Flags().StringVarP(&epsilon, "epsilon", "e", "", "required accuracy")
	randomCmd.Flags().StringVar(&format, "format", "", "report format: text, yaml (default from config)")
	_ = randomCmd.MarkFlagRequired("size")

	return randomCmd
}

func (a *app) random(cmd *cobra.Command, size int, seed int64, epsilon, format string) error {
	if size < 1 || size > a.cfg.MaxSize {
		return fmt.Errorf("--size %d not in 1..%d", size, a.cfg.MaxSize)
	}
	format, err := a.resolveFormat(format)
	if err != nil {
		return err
	}
	eps, ok, err := a.parseEpsilon(epsilon)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("--epsilon is required (or set epsilon in the config)")
	}

	m, err := builder.RandomDominant(size, builder.WithSeed(seed), builder.WithContext(a.solveCtx))
	if err != nil {
		return err
	}
	a.logger.Info("random system generated", slog.Int("n", size), slog.Int64("seed", seed))

	return a.run(cmd.OutOrStdout(), m, eps, format)
}
