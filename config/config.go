/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/entitystate/errors"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ENTITYSTATE_"

const (
	// DefaultTruncateLength is the length used by truncation when none is given.
	DefaultTruncateLength = 255
)

// Config holds all configuration for entitystate tooling.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Registry RegistryConfig `yaml:"registry"`
	Format   FormatConfig   `yaml:"format"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RegistryConfig holds settings applied to new registries.
type RegistryConfig struct {
	MapCapacity int `yaml:"map_capacity"`
}

// FormatConfig holds defaults for the formatting helpers.
type FormatConfig struct {
	TruncateLength int `yaml:"truncate_length"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Registry: RegistryConfig{
			MapCapacity: 8,
		},
		Format: FormatConfig{
			TruncateLength: DefaultTruncateLength,
		},
	}
}

// Load builds the configuration from, in increasing precedence: defaults, the
// YAML file at path (skipped when path is empty), and the environment. The
// given env files (".env" when none) are loaded into the environment first;
// missing env files are ignored and they never override variables already set.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file %s: %w", f, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := env("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := env("LOG_FORMAT"); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := env("MAP_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.NewValidationError(EnvPrefix+"MAP_CAPACITY", "must be an integer")
		}
		c.Registry.MapCapacity = n
	}
	if v := env("TRUNCATE_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.NewValidationError(EnvPrefix+"TRUNCATE_LENGTH", "must be an integer")
		}
		c.Format.TruncateLength = n
	}
	return nil
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + name))
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	validFormats = []string{"console", "json"}
)

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if !contains(validLevels, c.Logging.Level) {
		return errors.NewValidationError("logging.level", fmt.Sprintf("must be one of %s", strings.Join(validLevels, ", ")))
	}
	if !contains(validFormats, c.Logging.Format) {
		return errors.NewValidationError("logging.format", fmt.Sprintf("must be one of %s", strings.Join(validFormats, ", ")))
	}
	if c.Registry.MapCapacity < 0 {
		return errors.NewValidationError("registry.map_capacity", "must be >= 0")
	}
	if c.Format.TruncateLength <= 0 {
		return errors.NewValidationError("format.truncate_length", "must be greater than 0")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
