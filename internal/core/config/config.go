// Package config handles configuration loading and validation for tally.
package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// Prompt is printed before each interactive input line.
	Prompt string `yaml:"prompt"`
	// DivisionPrecision is the number of fractional digits kept when
	// dividing. Addition, subtraction, and multiplication are always exact.
	DivisionPrecision int32 `yaml:"division_precision"`
	// NoColor disables ANSI colors and banner styling.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Prompt:            "calc> ",
		DivisionPrecision: 28,
	}
}

// Load reads configuration from the given path. If path is empty or the
// file doesn't exist, returns defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Prompt == "" {
		c.Prompt = defaults.Prompt
	}
	if c.DivisionPrecision == 0 {
		c.DivisionPrecision = defaults.DivisionPrecision
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DivisionPrecision < 1 {
		errs = errs.Append("division_precision", fmt.Errorf("must be at least 1"))
	}
	if c.DivisionPrecision > 100 {
		errs = errs.Append("division_precision", fmt.Errorf("must be at most 100"))
	}

	return errs.ToError()
}
