// Package config loads the pipeloop command configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultInput is the map file read when nothing else is configured.
const DefaultInput = "day-10/input.txt"

var (
	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("config: log level must be 'debug', 'info', 'warn' or 'error'")
	// ErrInvalidLogFormat indicates an unknown log format.
	ErrInvalidLogFormat = errors.New("config: log format must be 'text' or 'json'")
	// ErrInvalidMaxRounds indicates a negative round cap.
	ErrInvalidMaxRounds = errors.New("config: max_rounds cannot be negative")
)

// Config holds the settings of the pipeloop command.
type Config struct {
	Input     string `toml:"input"`
	MaxRounds int    `toml:"max_rounds"` // 0 caps at the tile count
	Log       Log    `toml:"log"`
}

// Log selects the slog handler level and output format.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		Input: DefaultInput,
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load decodes the TOML file at path. Fields left unset keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Input == "" {
		cfg.Input = DefaultInput
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks log settings and the round cap.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.Log.Format)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxRounds, c.MaxRounds)
	}
	return nil
}

// SlogLevel maps Log.Level to a slog.Level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
