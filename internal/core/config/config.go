// Package config handles configuration loading and validation for listdemo.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/listdemo/internal/core/styles"
)

// Config holds the application configuration. Key bindings and the initial
// list are fixed and have no entries here.
type Config struct {
	Theme string    `yaml:"theme"`
	Log   LogConfig `yaml:"log"`
}

// LogConfig controls the structured logger. Command-line flags take
// precedence over these values.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty discards logs
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the given path. An empty path returns the
// defaults without touching the filesystem. A missing file is an error since
// the caller asked for it explicitly.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}
