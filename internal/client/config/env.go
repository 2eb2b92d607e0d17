package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO used exclusively for environment parsing; set fields
// are copied into the runtime Config so unset variables leave earlier layers
// untouched.
type envConfig struct {
	APIBaseURL    string        `env:"VHUB_API_BASE_URL"`
	DatabasePath  string        `env:"VHUB_DATABASE_PATH"`
	RetryAttempts int           `env:"VHUB_RETRY_ATTEMPTS"`
	RetryDelay    time.Duration `env:"VHUB_RETRY_DELAY"`
}

func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.RetryAttempts > 0 {
		cfg.RetryAttempts = ec.RetryAttempts
	}
	if ec.RetryDelay > 0 {
		cfg.RetryDelay = ec.RetryDelay
	}
	return nil
}
