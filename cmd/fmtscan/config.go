package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// OutputFormat selects how command results are printed.
type OutputFormat string

// Output formats.
const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Config holds CLI settings.
type Config struct {
	// Definitions is the default definition file for run and watch.
	Definitions string `json:"definitions" yaml:"definitions"`

	// Output is the result format: text, json or yaml.
	Output OutputFormat `json:"output" yaml:"output"`

	// LogLevel is the minimum level written to stderr: debug, info, warn or error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Output:   FormatText,
		LogLevel: "warn",
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use FMTSCAN_ prefix and take precedence over existing values.
//
// Supported variables:
//   - FMTSCAN_DEFINITIONS: Definition file path
//   - FMTSCAN_OUTPUT: Output format
//   - FMTSCAN_LOG_LEVEL: Log level
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("FMTSCAN_DEFINITIONS"); v != "" {
		c.Definitions = v
	}
	if v := os.Getenv("FMTSCAN_OUTPUT"); v != "" {
		c.Output = OutputFormat(strings.ToLower(v))
	}
	if v := os.Getenv("FMTSCAN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Output {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output must be text, json or yaml, got %q", c.Output)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return level, nil
}

// WithOutput returns a copy of the config with the specified output format.
func (c Config) WithOutput(format OutputFormat) Config {
	c.Output = format
	return c
}

// WithDefinitions returns a copy of the config with the specified definition file.
func (c Config) WithDefinitions(path string) Config {
	c.Definitions = path
	return c
}
