// Package config loads the environment-configured boundary values: the API
// base URL, the card processor's publishable key and where to keep local
// state.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds every environment value the console consumes.
type Config struct {
	// BaseURL is the backend the domain services talk to.
	BaseURL string `env:"PARKING_API_URL" envDefault:"http://localhost:8080"`

	// StripePublishableKey is forwarded to the payer completing a payment
	// link; the console itself never talks to the processor.
	StripePublishableKey string `env:"STRIPE_PUBLISHABLE_KEY"`

	// DataDir is where credentials are persisted. Defaults to
	// <user-config-dir>/parkctl.
	DataDir string `env:"PARKCTL_DATA_DIR"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "[Load] env.Parse")
	}

	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, errors.Wrap(err, "[Load] os.UserConfigDir")
		}
		cfg.DataDir = filepath.Join(base, "parkctl")
	}

	return cfg, nil
}
