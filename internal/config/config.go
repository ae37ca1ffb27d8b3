// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Missions  string `json:"missions,omitempty"`  // Path to a missions JSON file (offline runs)
	Templates string `json:"templates,omitempty"` // Path to an export-configuration JSON file

	// Reporter identity
	FullName   string `json:"full_name,omitempty"`
	Profession string `json:"profession,omitempty"`
	CNI        string `json:"cni,omitempty"`
	PPN        string `json:"ppn,omitempty"`

	// Behavior
	AssetBaseURL string `json:"asset_base_url,omitempty"` // Base URL serving the default template asset
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	Verbose      bool   `json:"verbose,omitempty"`        // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Missions != "" {
		if _, err := os.Stat(c.Missions); os.IsNotExist(err) {
			return fmt.Errorf("config error: missions file not found: %s", c.Missions)
		}
	}
	if c.Templates != "" {
		if _, err := os.Stat(c.Templates); os.IsNotExist(err) {
			return fmt.Errorf("config error: templates file not found: %s", c.Templates)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Missions == "" {
		result.Missions = defaults.Missions
	}
	if result.Templates == "" {
		result.Templates = defaults.Templates
	}
	if result.FullName == "" {
		result.FullName = defaults.FullName
	}
	if result.Profession == "" {
		result.Profession = defaults.Profession
	}
	if result.CNI == "" {
		result.CNI = defaults.CNI
	}
	if result.PPN == "" {
		result.PPN = defaults.PPN
	}
	if result.AssetBaseURL == "" {
		result.AssetBaseURL = defaults.AssetBaseURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
