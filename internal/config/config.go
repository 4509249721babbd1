// Package config loads shellingo settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds runtime settings. Command line flags override these.
type Config struct {
	// Seed fixes the shuffle order; 0 picks a random seed.
	Seed uint64 `env:"SHELLINGO_SEED" envDefault:"0"`

	LogLevel string `env:"SHELLINGO_LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error disabled"`

	// LogFile receives logs while the terminal UI is running. Empty discards
	// them.
	LogFile string `env:"SHELLINGO_LOG_FILE"`
}

var validate = validator.New()

// Load parses environment variables into a Config. When envFile is set its
// KEY=VALUE pairs are loaded first; variables already set in the process
// environment win.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints. Call it again after applying flag
// overrides.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
