// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings for the warrant server.
//
// Both signing secrets are required and must differ; a missing or shared
// secret is a startup failure, never a runtime fallback.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	DBPath     string `env:"DB_PATH" envDefault:"warrant.db"`

	AccessSecret  string        `env:"JWT_ACCESS_SECRET,notEmpty"`
	RefreshSecret string        `env:"JWT_REFRESH_SECRET,notEmpty"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"60m"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"720h"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`

	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	BackendURL  string `env:"BACKEND_URL" envDefault:"http://localhost:8080"`

	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// Load parses configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.AccessSecret == c.RefreshSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be distinct")
	}
	if c.RefreshTTL <= c.AccessTTL {
		return fmt.Errorf("REFRESH_TOKEN_TTL (%v) must exceed ACCESS_TOKEN_TTL (%v)", c.RefreshTTL, c.AccessTTL)
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
// It controls the Secure cookie flag and error detail in responses.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
