package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the wellness service.
// Environment variables are parsed from the WELLNESS_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"4000"`

	// Entry store: a single JSON array at a fixed path, created empty
	// on first access.
	DataFile string `envconfig:"DATA_FILE" default:"data/entries.json"`

	// Quote proxy upstream
	QuoteURL            string `envconfig:"QUOTE_URL" default:"https://dummyjson.com/quotes/random"`
	QuoteTimeoutSeconds int    `envconfig:"QUOTE_TIMEOUT_SECONDS" default:"7"`
}

// New loads configuration from the environment and validates it.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("WELLNESS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	if c.DataFile == "" {
		return fmt.Errorf("DATA_FILE must not be empty")
	}
	if c.QuoteURL == "" {
		return fmt.Errorf("QUOTE_URL must not be empty")
	}
	if c.QuoteTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid QUOTE_TIMEOUT_SECONDS: %d", c.QuoteTimeoutSeconds)
	}
	return nil
}

// QuoteTimeout returns the upstream quote timeout as a duration.
func (c *Config) QuoteTimeout() time.Duration {
	return time.Duration(c.QuoteTimeoutSeconds) * time.Second
}
