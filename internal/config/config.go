// Package config loads trendlab settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given and the file exists.
const DefaultPath = "trendlab.yaml"

// Config holds user-tunable settings.
type Config struct {
	// Database is the path of the SQLite file.
	Database string `yaml:"database"`

	// Decimals is the number of decimal places used to display metrics.
	Decimals int `yaml:"decimals"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Database: "trendlab.db",
		Decimals: 2,
		LogLevel: "info",
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value. Unknown keys are rejected.
//
// If path is empty, DefaultPath is used when it exists; otherwise defaults
// are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Database) == "" {
		return errors.New("database must not be empty")
	}
	if c.Decimals < 0 || c.Decimals > 10 {
		return fmt.Errorf("decimals must be between 0 and 10, got %d", c.Decimals)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns LogLevel as a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return lvl, nil
}
