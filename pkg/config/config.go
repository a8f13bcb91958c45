// Package config provides configuration loading and management for the
// sliceview command line tool. It handles loading configuration from YAML
// files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"sliceview/internal/models"
)

// Config represents the tool configuration loaded from YAML
type Config struct {
	// View parameters
	View struct {
		// Region is the child rectangle to view within the parent image
		Region models.Region `yaml:"region"`

		// Split renders the region as two side-by-side halves instead
		// of one crop
		Split bool `yaml:"split"`

		// Quadrants renders the four half-by-half quadrants of the
		// whole parent, ignoring Region
		Quadrants bool `yaml:"quadrants"`
	} `yaml:"view"`

	// Statistics parameters
	Stats struct {
		// Enabled turns on per-view statistics output
		Enabled bool `yaml:"enabled"`

		// HistogramBins is the bin count used for the entropy estimate
		HistogramBins int `yaml:"histogramBins"`
	} `yaml:"stats"`

	// Output parameters
	Output struct {
		// Dir is the directory crops are written to
		Dir string `yaml:"dir"`

		// JPEGQuality controls the quality of saved crops
		JPEGQuality int `yaml:"jpegQuality"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default view parameters: a 64x64 crop at the origin
	cfg.View.Region = models.Region{Row: 0, Col: 0, Width: 64, Height: 64}
	cfg.View.Split = false
	cfg.View.Quadrants = false

	// Set default statistics parameters
	cfg.Stats.Enabled = true
	cfg.Stats.HistogramBins = 64

	// Set default output parameters
	cfg.Output.Dir = "crops"
	cfg.Output.JPEGQuality = 90
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
