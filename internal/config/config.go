// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrMissingClientID is returned by Load when TOKENVIEW_GOOGLE_CLIENT_ID is
// unset or blank. The application must not serve any screen without it.
var ErrMissingClientID = errors.New("google client id is not set: set TOKENVIEW_GOOGLE_CLIENT_ID")

// Store backends accepted in TOKENVIEW_STORE.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// DefaultWelcomeMarkdown is shown above the sign-in button when
// TOKENVIEW_WELCOME_MARKDOWN is not set.
const DefaultWelcomeMarkdown = "Sign in with your **Google** account to access the dashboard."

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GoogleClientID  string  `env:"TOKENVIEW_GOOGLE_CLIENT_ID"`
	ListenAddr      string  `env:"TOKENVIEW_LISTEN_ADDR"      envDefault:"127.0.0.1:8080"`
	Store           string  `env:"TOKENVIEW_STORE"            envDefault:"sqlite"`
	DBPath          string  `env:"TOKENVIEW_DB_PATH"          envDefault:"tokenview.db"`
	SecureCookies   bool    `env:"TOKENVIEW_SECURE_COOKIES"   envDefault:"false"`
	LoginRateLimit  float64 `env:"TOKENVIEW_LOGIN_RATE_LIMIT" envDefault:"5"`
	LoginRateBurst  int     `env:"TOKENVIEW_LOGIN_RATE_BURST" envDefault:"10"`
	WelcomeMarkdown string  `env:"TOKENVIEW_WELCOME_MARKDOWN"`
	LogLevel        string  `env:"TOKENVIEW_LOG_LEVEL"        envDefault:"info"`
	LogFormat       string  `env:"TOKENVIEW_LOG_FORMAT"       envDefault:"text"`
}

// Load reads configuration from environment variables and returns a validated Config.
// TOKENVIEW_GOOGLE_CLIENT_ID is required; every other variable has a default.
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads configuration from environment variables without validating
// it, so callers can apply overrides before calling Validate.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.GoogleClientID = strings.TrimSpace(cfg.GoogleClientID)
	if cfg.WelcomeMarkdown == "" {
		cfg.WelcomeMarkdown = DefaultWelcomeMarkdown
	}
	return &cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.GoogleClientID == "" {
		return ErrMissingClientID
	}

	if c.ListenAddr == "" {
		return errors.New("TOKENVIEW_LISTEN_ADDR must not be empty")
	}

	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			return errors.New("TOKENVIEW_DB_PATH must not be empty when TOKENVIEW_STORE=sqlite")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("TOKENVIEW_STORE must be %q or %q, got %q", StoreSQLite, StoreMemory, c.Store)
	}

	if c.LoginRateLimit <= 0 {
		return fmt.Errorf("TOKENVIEW_LOGIN_RATE_LIMIT must be positive, got %v", c.LoginRateLimit)
	}
	if c.LoginRateBurst < 1 {
		return fmt.Errorf("TOKENVIEW_LOGIN_RATE_BURST must be at least 1, got %d", c.LoginRateBurst)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("TOKENVIEW_LOG_LEVEL must be debug, info, warn, or error, got %q", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("TOKENVIEW_LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}

	return nil
}
