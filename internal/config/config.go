package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the client configuration, parsed from the environment.
type Config struct {
	APIBaseURL  string        `env:"SHOPFRONT_API_BASE_URL" envDefault:"http://localhost:1111/api/v1"`
	HTTPTimeout time.Duration `env:"SHOPFRONT_HTTP_TIMEOUT" envDefault:"30s"`
	StateDir    string        `env:"SHOPFRONT_STATE_DIR"`
	LogLevel    string        `env:"SHOPFRONT_LOG_LEVEL"    envDefault:"info"`
}

// New creates a Config instance from environment variables.
func New() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: parse environment variables: %w", err)
	}

	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve user config directory: %w", err)
		}
		cfg.StateDir = filepath.Join(base, "shopfront")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config: missing SHOPFRONT_API_BASE_URL environment variable")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("config: SHOPFRONT_HTTP_TIMEOUT must be positive")
	}

	return nil
}
