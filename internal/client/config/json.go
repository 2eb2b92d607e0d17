package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/flagx"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "1s"
// or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL    string         `json:"api_base_url"`
	DatabasePath  string         `json:"database_path"`
	RetryAttempts int            `json:"retry_attempts"`
	RetryDelay    timex.Duration `json:"retry_delay"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is set, no JSON is
// loaded. Only fields present with non-zero values override earlier layers.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RetryAttempts > 0 {
		cfg.RetryAttempts = jc.RetryAttempts
	}
	if jc.RetryDelay.Duration > 0 {
		cfg.RetryDelay = time.Duration(jc.RetryDelay.Duration)
	}
	return nil
}
