// SPDX-License-Identifier: MIT

// Package cmd holds the cobra command tree of the simpleiter binary.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/simpleiter/config"
	"github.com/katalvlaran/simpleiter/numeric"
)

// ConfigEnv names the variable consulted when --config is not given.
const ConfigEnv = "SIMPLEITER_CONFIG"

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string
	noColor   bool

	cfg       *config.Config
	logger    *slog.Logger
	solveCtx  numeric.Context
	searchCtx numeric.Context
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "simpleiter",
		Short: "Simple-iteration solver for linear systems",
		Long: `simpleiter solves A·x = b by fixed-point iteration in arbitrary-precision
decimal arithmetic. Equations are first reordered so that every diagonal
coefficient outweighs the rest of its row; systems where no such order is
found are rejected.

Commands:
  solve    - read a system from stdin or a file and solve it
  random   - generate a random dominant system and solve it
  version  - print build information`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml); default $"+ConfigEnv)
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable styled report headings")

	rootCmd.AddCommand(newSolveCmd(a), newRandomCmd(a), newVersionCmd())

	return rootCmd
}

// Execute runs the command tree against the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the configuration, applies flag overrides and builds the
// logger and numeric contexts.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.cfgFile
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	if a.solveCtx, err = cfg.SolveContext(); err != nil {
		return fmt.Errorf("solve context: %w", err)
	}
	if a.searchCtx, err = cfg.SearchContext(); err != nil {
		return fmt.Errorf("search context: %w", err)
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel(), cfg.Log.Format)
	a.logger.Debug("config loaded",
		slog.String("path", path),
		slog.String("solve", a.solveCtx.String()),
		slog.String("search", a.searchCtx.String()),
	)

	return nil
}

// newLogger returns a text or JSON slog logger writing to w.
func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
