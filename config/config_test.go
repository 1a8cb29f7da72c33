// SPDX-License-Identifier: MIT
package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simpleiter/config"
	"github.com/katalvlaran/simpleiter/numeric"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	solve, err := cfg.SolveContext()
	require.NoError(t, err)
	assert.Equal(t, numeric.Iteration(), solve)
	search, err := cfg.SearchContext()
	require.NoError(t, err)
	assert.Equal(t, numeric.Search(), search)

	_, ok, err := cfg.EpsilonValue()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "simpleiter.toml", `
epsilon = "1e-9"
max_size = 10

[solve]
precision = 80
rounding = "half-even"

[log]
level = "debug"
format = "json"

[output]
format = "yaml"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(80), cfg.Solve.Precision)
	assert.Equal(t, "half-even", cfg.Solve.Rounding)
	assert.Equal(t, uint32(numeric.SearchPrecision), cfg.Search.Precision, "untouched keys keep defaults")
	assert.Equal(t, 10, cfg.MaxSize)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())

	eps, ok, err := cfg.EpsilonValue()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, eps.Cmp(numeric.Exact().MustParse("0.000000001")))

	ctx, err := cfg.SolveContext()
	require.NoError(t, err)
	assert.Equal(t, numeric.MustNew(80, numeric.HalfEven), ctx)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "simpleiter.yml", `
search:
  precision: 30
  rounding: half_down
output:
  format: yaml
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	ctx, err := cfg.SearchContext()
	require.NoError(t, err)
	assert.Equal(t, numeric.MustNew(30, numeric.HalfDown), ctx)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "simpleiter.toml", "epsilon = \"0.01\"\n[solve]\nprecision = 80\n")
	t.Setenv("SIMPLEITER_SOLVE_PRECISION", "64")
	t.Setenv("SIMPLEITER_EPSILON", "0.5")
	t.Setenv("SIMPLEITER_LOG_LEVEL", "error")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(64), cfg.Solve.Precision)
	assert.Equal(t, "0.5", cfg.Epsilon)
	assert.Equal(t, slog.LevelError, cfg.LogLevel())
}

func TestLoad_EnvParseError(t *testing.T) {
	t.Setenv("SIMPLEITER_MAX_SIZE", "many")
	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name, content, field string
	}{
		{"rounding", "[solve]\nrounding = \"sideways\"\n", "Solve.Rounding"},
		{"precision", "[search]\nprecision = 0\n", "Search.Precision"},
		{"epsilon", "epsilon = \"-1\"\n", "Epsilon"},
		{"epsilon literal", "epsilon = \"tiny\"\n", "Epsilon"},
		{"max size", "max_size = 21\n", "MaxSize"},
		{"log level", "[log]\nlevel = \"loud\"\n", "Log.Level"},
		{"output", "[output]\nformat = \"xml\"\n", "Output.Format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, "c.toml", tc.content))
			require.ErrorIs(t, err, config.ErrInvalid)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "c.json", "{}"))
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(writeFile(t, "c.toml", "max_size = \"x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode config")
}
