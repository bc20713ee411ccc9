// Package config loads optional tool settings from a YAML file and
// environment variables. Pipeline constants (canvas sizes, fill color,
// strip threshold) are fixed by the catalog and deliberately absent here.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sydlexius/iconforge/internal/logging"
)

// Config holds all tool configuration.
type Config struct {
	Logging logging.Config `yaml:"logging"`
	Emit    EmitConfig     `yaml:"emit"`
}

// EmitConfig controls target emission.
type EmitConfig struct {
	// Workers bounds the number of targets rendered concurrently.
	Workers int `yaml:"workers"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: logging.DefaultConfig(),
		Emit:    EmitConfig{Workers: 4},
	}
}

// Load reads config from a YAML file (if it exists) and overrides with
// environment variables. Environment variables take precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user's own environment
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("ICONFORGE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ICONFORGE_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("ICONFORGE_LOG_FILE"); v != "" {
		c.Logging.FilePath = v
	}
	if v := os.Getenv("ICONFORGE_WORKERS"); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			c.Emit.Workers = workers
		}
	}
}

func (c *Config) validate() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}
	if c.Emit.Workers < 1 {
		return fmt.Errorf("emit workers must be positive, got %d", c.Emit.Workers)
	}
	return nil
}
