// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the slide service.
// Environment variables are automatically parsed from the SLIDEAI_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage: driver is "auto", "sqlite" or "postgres". Auto picks postgres
	// when a DSN is configured and falls back to the embedded sqlite file.
	DBDriver    string `envconfig:"DB_DRIVER" default:"auto"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"./data/slideai.db"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// AI generation (OpenRouter chat completions)
	OpenRouterAPIKey  string        `envconfig:"OPENROUTER_API_KEY" default:""`
	OpenRouterBaseURL string        `envconfig:"OPENROUTER_BASE_URL" default:"https://openrouter.ai/api/v1"`
	AIModel           string        `envconfig:"AI_MODEL" default:"openai/gpt-4o-mini"`
	AITimeout         time.Duration `envconfig:"AI_TIMEOUT" default:"60s"`

	// Editor sessions
	AutosaveDebounce time.Duration `envconfig:"AUTOSAVE_DEBOUNCE" default:"2s"`
}

// ResolveDefaults derives DBDriver when set to "auto" and validates the result.
func (c *Config) ResolveDefaults() error {
	if c.DBDriver == "" || c.DBDriver == "auto" {
		if c.PostgresDSN != "" {
			c.DBDriver = "postgres"
		} else {
			c.DBDriver = "sqlite"
		}
	}

	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set for the sqlite driver")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN must be set for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables are prefixed with SLIDEAI_
// Example: SLIDEAI_HTTP_PORT, SLIDEAI_POSTGRES_DSN
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("SLIDEAI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("db_driver", cfg.DBDriver).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Bool("openrouter_key_present", cfg.OpenRouterAPIKey != "").
		Str("ai_model", cfg.AIModel).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	return &Config{
		Environment:      EnvTesting,
		HTTPPort:         0,
		DBDriver:         "sqlite",
		SQLitePath:       ":memory:",
		AIModel:          "openai/gpt-4o-mini",
		AITimeout:        5 * time.Second,
		AutosaveDebounce: 10 * time.Millisecond,
	}
}
