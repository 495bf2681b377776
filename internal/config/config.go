// Package config loads boundary-layer policy and logging settings from
// the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/pijn/randcore/internal/random"
)

// Config holds the policy ceilings and throttle settings applied by the
// service layer, plus the log level. Defaults match the original service
// policy (length up to 256, sample count up to 100).
type Config struct {
	MaxLength    int    `env:"RANDCORE_MAX_LENGTH" envDefault:"256"`     // Longest string the service will generate
	MaxCount     int    `env:"RANDCORE_MAX_COUNT" envDefault:"100"`      // Largest sample the service will draw
	OpsPerSecond int    `env:"RANDCORE_OPS_PER_SECOND" envDefault:"50"`  // Sustained operations per second, per operation
	Burst        int    `env:"RANDCORE_BURST" envDefault:"25"`           // Burst size for the operation throttle
	LogLevel     string `env:"RANDCORE_LOG_LEVEL" envDefault:"info"`     // debug, info, warn, or error
}

// Load parses configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configured policy values.
//
// MaxLength may lower the core's length bound but never raise it past
// it. Returns an error describing the first validation failure, or nil
// if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxLength < random.MinLength || c.MaxLength > random.MaxLength {
		return fmt.Errorf("invalid max length: %d (must be between %d and %d)", c.MaxLength, random.MinLength, random.MaxLength)
	}
	if c.MaxCount < 1 {
		return fmt.Errorf("invalid max count: %d (must be at least 1)", c.MaxCount)
	}
	if c.OpsPerSecond < 1 {
		return fmt.Errorf("invalid ops per second: %d (must be at least 1)", c.OpsPerSecond)
	}
	if c.Burst < 1 {
		return fmt.Errorf("invalid burst: %d (must be at least 1)", c.Burst)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", c.LogLevel)
	}
}
