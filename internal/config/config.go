// Package config handles configuration loading from the optional config file,
// defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/term"

	"github.com/faizmokh/tasklist/internal/files"
)

// Color modes.
const (
	ColorAlways = "always"
	ColorNever  = "never"
	ColorAuto   = "auto"
)

// Config holds the application configuration.
type Config struct {
	DataFile string `toml:"data_file"` // relative to the base directory unless absolute
	Color    string `toml:"color"`     // "always", "never", "auto"
	LogLevel string `toml:"log_level"` // "debug", "info", "warn", "error"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataFile: files.DefaultDataFile,
		Color:    ColorAlways,
		LogLevel: "warn",
	}
}

// Load reads the config file managed by manager, then applies env overrides.
// A missing config file is not an error.
func Load(manager *files.Manager) (*Config, error) {
	cfg := Default()

	data, err := manager.Read(files.ConfigFileName)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", manager.ConfigPath(), err)
		}
	case errors.Is(err, files.ErrNotFound):
		// No config file; keep defaults.
	default:
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("TASKLIST_DATA_FILE")); v != "" {
		cfg.DataFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKLIST_COLOR")); v != "" {
		cfg.Color = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("TASKLIST_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = ColorNever
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data_file must not be empty")
	}
	switch c.Color {
	case ColorAlways, ColorNever, ColorAuto:
	default:
		return fmt.Errorf("color must be one of always, never, auto (got %q)", c.Color)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}
	return nil
}

// UseColor resolves the color mode. In auto mode color is used only when out is a terminal.
func (c *Config) UseColor(out io.Writer) bool {
	switch c.Color {
	case ColorNever:
		return false
	case ColorAuto:
		f, ok := out.(interface{ Fd() uintptr })
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return true
	}
}
