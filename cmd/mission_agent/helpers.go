package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/mission-reporter/internal/schemas"
	"github.com/jonathan/mission-reporter/internal/types"
)

// loadMissions reads a missions JSON file: either a bare array of records or
// an object with a "missions" field.
func loadMissions(path string) ([]types.MissionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read missions file: %w", err)
	}

	var missions []types.MissionRecord
	if err := json.Unmarshal(data, &missions); err == nil {
		return missions, nil
	}

	var wrapped struct {
		Missions []types.MissionRecord `json:"missions"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse missions JSON: %w", err)
	}
	return wrapped.Missions, nil
}

// loadExportConfiguration reads and validates a template configuration file.
// A missing path yields the default configuration rather than an error.
func loadExportConfiguration(path string) (types.ExportConfiguration, error) {
	cfg := types.ExportConfiguration{ActiveTemplateID: types.DefaultTemplateID}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read templates file: %w", err)
	}

	if err := schemas.ValidateExportConfiguration(string(data)); err != nil {
		return cfg, fmt.Errorf("invalid templates file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse templates JSON: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// saveExportConfiguration writes a template configuration file.
func saveExportConfiguration(path string, cfg types.ExportConfiguration) error {
	if cfg.CustomTemplates == nil {
		cfg.CustomTemplates = []types.TemplateDescriptor{}
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal templates JSON: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write templates file: %w", err)
	}
	return nil
}

// writeOutput writes a rendered artifact, creating parent directories.
func writeOutput(path string, data []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
