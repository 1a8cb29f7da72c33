// SPDX-License-Identifier: MIT
// Package config loads the settings of the simpleiter command.
//
// Sources are layered, later ones winning:
//
//  1. built-in defaults (Default),
//  2. an optional TOML (.toml) or YAML (.yaml, .yml) file,
//  3. SIMPLEITER_* environment variables,
//
// and the result is validated before use.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/apd/v3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simpleiter/numeric"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SIMPLEITER_"

var (
	// ErrUnsupportedFormat is returned for a config file with an unknown extension.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config holds the complete application configuration.
type Config struct {
	Solve   ContextConfig `toml:"solve" yaml:"solve" envPrefix:"SOLVE_"`
	Search  ContextConfig `toml:"search" yaml:"search" envPrefix:"SEARCH_"`
	Epsilon string        `toml:"epsilon" yaml:"epsilon" env:"EPSILON" validate:"omitempty,posdecimal"`
	MaxSize int           `toml:"max_size" yaml:"max_size" env:"MAX_SIZE" validate:"gte=1,lte=20"`
	Log     LogConfig     `toml:"log" yaml:"log" envPrefix:"LOG_"`
	Output  OutputConfig  `toml:"output" yaml:"output" envPrefix:"OUTPUT_"`
}

// ContextConfig describes one numeric context.
type ContextConfig struct {
	Precision uint32 `toml:"precision" yaml:"precision" env:"PRECISION" validate:"gte=1,lte=10000"`
	Rounding  string `toml:"rounding" yaml:"rounding" env:"ROUNDING" validate:"rounding"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `toml:"format" yaml:"format" env:"FORMAT" validate:"oneof=text json"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format" env:"FORMAT" validate:"oneof=text yaml"`
}

// Default returns the built-in configuration: 50-digit half-up solving,
// 20-digit half-up search, no default ε, up to 20 equations, text logs at
// warn level and a text report.
func Default() *Config {
	return &Config{
		Solve:   ContextConfig{Precision: numeric.IterationPrecision, Rounding: numeric.HalfUp.String()},
		Search:  ContextConfig{Precision: numeric.SearchPrecision, Rounding: numeric.HalfUp.String()},
		MaxSize: 20,
		Log:     LogConfig{Level: "warn", Format: "text"},
		Output:  OutputConfig{Format: "text"},
	}
}

// Load builds the configuration from defaults, the file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.decodeFile(os.ExpandEnv(path)); err != nil {
			return nil, err
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, c); err != nil {
			return fmt.Errorf("failed to decode config: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		if err = yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to decode config: %w", err)
		}
	default:
		return fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	return nil
}

// SolveContext returns the numeric context used by the solver.
func (c *Config) SolveContext() (numeric.Context, error) { return c.Solve.Context() }

// SearchContext returns the numeric context used by the dominance search.
func (c *Config) SearchContext() (numeric.Context, error) { return c.Search.Context() }

// Context converts the settings into a numeric.Context.
func (cc ContextConfig) Context() (numeric.Context, error) {
	r, err := numeric.ParseRounding(cc.Rounding)
	if err != nil {
		return numeric.Context{}, err
	}

	return numeric.New(cc.Precision, r)
}

// EpsilonValue parses the configured default ε. ok is false when none is set.
func (c *Config) EpsilonValue() (eps *apd.Decimal, ok bool, err error) {
	if c.Epsilon == "" {
		return nil, false, nil
	}
	if eps, err = numeric.Iteration().Parse(c.Epsilon); err != nil {
		return nil, false, err
	}

	return eps, true, nil
}

// LogLevel maps Log.Level to a slog level (warn for unknown values).
func (c *Config) LogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn
	}

	return l
}
