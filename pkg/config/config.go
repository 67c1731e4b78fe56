// Package config loads settings for the darklight command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for darklight
type Config struct {
	// Watch settings
	PollInterval time.Duration `yaml:"poll_interval" env:"DARKLIGHT_POLL_INTERVAL"`
	Timeout      time.Duration `yaml:"timeout" env:"DARKLIGHT_TIMEOUT"`
	Notify       bool          `yaml:"notify" env:"DARKLIGHT_NOTIFY"`

	// Output flags
	Verbose bool   `yaml:"verbose" env:"DARKLIGHT_VERBOSE"`
	Color   bool   `yaml:"color" env:"DARKLIGHT_COLOR"`
	Format  string `yaml:"format" env:"DARKLIGHT_FORMAT"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		PollInterval: 500 * time.Millisecond,
		Notify:       true,
		Color:        true,
		Format:       "text",
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if path := os.Getenv("DARKLIGHT_CONFIG"); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "darklight", "config.yaml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "darklight", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if err := envDuration("DARKLIGHT_POLL_INTERVAL", &cfg.PollInterval); err != nil {
		return err
	}
	if err := envDuration("DARKLIGHT_TIMEOUT", &cfg.Timeout); err != nil {
		return err
	}
	if err := envBool("DARKLIGHT_NOTIFY", &cfg.Notify); err != nil {
		return err
	}
	if err := envBool("DARKLIGHT_VERBOSE", &cfg.Verbose); err != nil {
		return err
	}
	if err := envBool("DARKLIGHT_COLOR", &cfg.Color); err != nil {
		return err
	}

	if format := os.Getenv("DARKLIGHT_FORMAT"); format != "" {
		cfg.Format = format
	}

	return nil
}

func envDuration(name string, dst *time.Duration) error {
	value := os.Getenv(name)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = d
	return nil
}

func envBool(name string, dst *bool) error {
	switch value := os.Getenv(name); value {
	case "":
	case "true", "1", "yes":
		*dst = true
	case "false", "0", "no":
		*dst = false
	default:
		return fmt.Errorf("invalid %s value: %q (use true/false)", name, value)
	}
	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}

	switch cfg.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("format must be text or json, got %q", cfg.Format)
	}

	return nil
}
