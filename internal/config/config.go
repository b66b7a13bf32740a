// Package config loads the dabuild configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for dabuild.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Linter  LinterConfig  `yaml:"linter"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// StorageConfig configures document persistence.
type StorageConfig struct {
	SaveRoot string `yaml:"save_root"`
}

// LinterConfig configures the optional external document checker. An empty
// command disables it.
type LinterConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Listen: ":8000"},
		Storage: StorageConfig{SaveRoot: filepath.Join("data", "saved_interviews")},
	}
}

// Load reads and parses a config file. A missing file is not an error: the
// analyzer commands work without any setup, so defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for required fields.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if c.Storage.SaveRoot == "" {
		return fmt.Errorf("storage.save_root is required")
	}
	return nil
}
