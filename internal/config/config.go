// Package config loads the backend configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

var ErrNoJWTSecret = errors.New("JWT_SECRET must be set")

// Config holds all runtime configuration. Every value can be set through
// the environment, optionally via a .env file in the working directory.
type Config struct {
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	LogFormat string `env:"LOG_FORMAT"`
	Port      string `env:"PORT" envDefault:"8080"`

	// Path of the sqlite database file. The directory is created on startup.
	DatabaseFile string `env:"DATABASE_FILE" envDefault:"data/ledgerlite.db"`

	// Secret used to sign API tokens and their validity duration.
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenExpiry time.Duration `env:"TOKEN_EXPIRY" envDefault:"24h"`

	// Origin patterns allowed for CORS, whitespace separated.
	// Patterns support * globbing, e.g. "https://*.example.com".
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:" "`

	// Budget progress status tiering, in percent of the budget amount.
	BudgetWarnPercent     int64 `env:"BUDGET_WARN_PERCENT" envDefault:"70"`
	BudgetCriticalPercent int64 `env:"BUDGET_CRITICAL_PERCENT" envDefault:"90"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is merged in first when present, without overriding
// variables that are already set.
func Load() (Config, error) {
	// The .env file is optional, a missing file is not an error
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrNoJWTSecret
	}

	if cfg.BudgetWarnPercent <= 0 || cfg.BudgetCriticalPercent <= cfg.BudgetWarnPercent {
		return Config{}, fmt.Errorf("invalid budget thresholds: warn %d, critical %d", cfg.BudgetWarnPercent, cfg.BudgetCriticalPercent)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
