// Package config handles configuration for the VolunteerHub client,
// including defaults, environment variables, JSON overlay, and command-line
// flags.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - APIBaseURL: origin of the VolunteerHub REST API.
//   - DatabasePath: sqlite file holding local client state (credential slot).
//   - RetryAttempts: total attempt budget for each API call.
//   - RetryDelay: constant pause between attempts.
type Config struct {
	APIBaseURL    string
	DatabasePath  string
	RetryAttempts int
	RetryDelay    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "volunteerhub.db"
	c.RetryAttempts = 3
	c.RetryDelay = 1 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
