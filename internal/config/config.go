// Package config loads the optional .jsondom.yaml configuration file.
// The file only controls CLI behavior; the library itself takes every
// knob as an explicit argument.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the working directory and then in the
// user's home directory.
const ConfigFileName = ".jsondom.yaml"

// Config represents the complete CLI configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Strict StrictConfig `yaml:"strict"`
}

// OutputConfig controls how the normalized document is written.
type OutputConfig struct {
	TrailingNewline bool `yaml:"trailing_newline"`
}

// StrictConfig tightens the parser's deliberate leniencies after the
// parse: unknown bare literals and duplicate object keys are accepted by
// the parser but can be rejected here.
type StrictConfig struct {
	RejectUnknownLiterals bool `yaml:"reject_unknown_literals"`
	RejectDuplicateKeys   bool `yaml:"reject_duplicate_keys"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Output: OutputConfig{
			TrailingNewline: true,
		},
	}
}

// LoadConfig finds and loads the configuration file, falling back to the
// defaults when no file exists.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return LoadConfigFromFile(ConfigFileName)
	}
	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadConfigFromFile(path)
		}
	}
	return NewConfig(), nil
}

// LoadConfigFromFile loads the configuration from a specific path.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return cfg, nil
}
