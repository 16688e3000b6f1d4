// SPDX-License-Identifier: MIT

// Package config holds the gaussteps CLI configuration.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/katalvlaran/gaussteps/gauss"
	"github.com/katalvlaran/gaussteps/report"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the YAML layout of the configuration file.
type Config struct {
	// Tolerance below which values are treated as zero.
	Tolerance float64 `yaml:"tolerance"`

	// Format is one of text, markdown, pretty, json.
	Format string `yaml:"format"`

	// Workers bounds concurrent solves in batch mode; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tolerance: gauss.Tolerance,
		Format:    string(report.FormatText),
		Workers:   0,
		LogLevel:  "warn",
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance %v must be finite and >= 0", ErrInvalid, c.Tolerance)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d must be >= 0", ErrInvalid, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// OutputFormat parses Format.
func (c Config) OutputFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}
