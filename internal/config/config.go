// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-matcher/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or may be
// overridden by CLI flags.
type Config struct {
	// Profiles overrides the built-in industry weighting profiles. When set
	// it must contain a "default" entry and every profile must sum to 1.0.
	Profiles scoring.Profiles `json:"profiles,omitempty"`

	// Result cache sizing for the score command.
	CacheEntries    int `json:"cache_entries,omitempty"`
	CacheTTLMinutes int `json:"cache_ttl_minutes,omitempty"`

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Print formatted score summaries
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON-encoded logs
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Weighting
// profiles are checked here so a malformed profile aborts startup instead of
// skewing scores.
func (c *Config) Validate() error {
	if c.Profiles != nil {
		if err := c.Profiles.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	if c.CacheEntries < 0 {
		return fmt.Errorf("config error: 'cache_entries' must be non-negative")
	}
	if c.CacheTTLMinutes < 0 {
		return fmt.Errorf("config error: 'cache_ttl_minutes' must be non-negative")
	}

	return nil
}
