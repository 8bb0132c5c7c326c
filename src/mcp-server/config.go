// Copyright (c) 2026 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h315uk3/mcp-forge/src/internal/forge/generate"
	"gopkg.in/yaml.v3"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the MCP server configuration structure.
// It contains default settings for project and stub generation.
//
// The configuration can be loaded from a JSON or YAML file specified by the
// MCP_FORGE_CONFIG_FILE environment variable, with defaults applied for any
// missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: Default settings for generation operations
	Defaults struct {
		// ModulePrefix: Module path prefix for generated go.mod files (e.g., "github.com/acme")
		ModulePrefix string `json:"modulePrefix" yaml:"modulePrefix"`
		// GoVersion: Go directive version written into generated go.mod files
		GoVersion string `json:"goVersion" yaml:"goVersion"`
		// OutputBaseDir: Base directory that delegated README writes are confined to
		OutputBaseDir string `json:"outputBaseDir" yaml:"outputBaseDir"`
		// MaxNameLength: Maximum length accepted for generated identifiers
		MaxNameLength int `json:"maxNameLength" yaml:"maxNameLength"`
	} `json:"defaults" yaml:"defaults"`

	// Logging: Configuration for server-side structured logging
	Logging struct {
		// File: Path to a log file for structured server logs (empty disables logging)
		File string `json:"file,omitempty" yaml:"file,omitempty"`
	} `json:"logging" yaml:"logging"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// It supports .json, .yaml, and .yml extensions for flexible configuration management.
//
// Parameters:
//   - configPath: Path to the configuration file
//
// Returns:
//   - configFormat: The detected format (configFormatJSON or configFormatYAML)
//
// The function uses case-insensitive extension matching for cross-platform compatibility.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
// It supports both JSON and YAML formats for configuration flexibility.
//
// Parameters:
//   - data: Raw configuration file contents
//   - config: Pointer to Config struct to populate
//   - format: The configuration format (configFormatJSON or configFormatYAML)
//
// Returns:
//   - error: Any parsing error encountered during unmarshaling
//
// The function delegates to the appropriate parser based on the format parameter,
// ensuring consistent error handling across both configuration formats.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads MCP server configuration from a JSON or YAML file or applies defaults.
// It sets up default values for generation defaults and logging settings.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. MCP_FORGE_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//  4. Environment variables override config file values (MCP_FORGE_OUTPUT_DIR)
//
// The function first applies hardcoded defaults, then attempts to load and merge
// configuration from the specified file. The file format is automatically detected
// based on the file extension (.json, .yaml, or .yml).
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set defaults
	config.Defaults.ModulePrefix = "example.com"
	config.Defaults.GoVersion = "1.25"
	config.Defaults.OutputBaseDir = "."
	config.Defaults.MaxNameLength = 64

	// Check environment variable for config file path if not provided
	if configPath == "" {
		configPath = os.Getenv("MCP_FORGE_CONFIG_FILE")
	}

	// Try to load from file if path is provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Detect format and unmarshal accordingly
		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.Defaults.ModulePrefix == "" {
			config.Defaults.ModulePrefix = "example.com"
		}
		if config.Defaults.GoVersion == "" {
			config.Defaults.GoVersion = "1.25"
		}
		if config.Defaults.OutputBaseDir == "" {
			config.Defaults.OutputBaseDir = "."
		}
		if config.Defaults.MaxNameLength <= 0 {
			config.Defaults.MaxNameLength = 64
		}
	}

	// Override output base directory from environment if set
	if dir := os.Getenv("MCP_FORGE_OUTPUT_DIR"); dir != "" {
		config.Defaults.OutputBaseDir = dir
	}

	return config, nil
}

// generateOptions converts the configured generation defaults into the
// options consumed by the generator set.
func (c *Config) generateOptions() generate.Options {
	return generate.Options{
		ModulePrefix:  c.Defaults.ModulePrefix,
		GoVersion:     c.Defaults.GoVersion,
		OutputBaseDir: c.Defaults.OutputBaseDir,
	}
}
