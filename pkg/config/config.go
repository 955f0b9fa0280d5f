// Package config provides configuration loading and defaults for colat.
//
// Configuration is read from an optional TOML file in the user's config
// directory. Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const appDirName = "colat"

// Config is the full configuration.
type Config struct {
	UI   UIConfig   `toml:"ui"`
	Keys KeysConfig `toml:"keys"`
	Log  LogConfig  `toml:"log"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	// File is the log path. Empty means debug.log in the config directory.
	File string `toml:"file"`
	// Level is one of trace, debug, info, warn, error.
	Level string `toml:"level"`
	// MaxSizeMB is the size at which the log is rotated.
	MaxSizeMB int `toml:"max_size_mb"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI:   defaultUIConfig(),
		Keys: defaultKeysConfig(),
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 5,
		},
	}
}

// GetConfigDir returns the path to the colat config directory
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// DefaultPath returns the location of config.toml
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultLogPath returns the location of debug.log
func DefaultLogPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}

// Load reads the TOML file at path over the defaults. Keys that are not
// part of the schema are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file at DefaultPath, falling back to Default when
// the file does not exist.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks values that cannot be expressed in the TOML schema.
func (c *Config) Validate() error {
	if err := c.UI.validate(); err != nil {
		return err
	}
	if err := c.Keys.validate(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of trace, debug, info, warn, error", c.Log.Level)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be positive, got %d", c.Log.MaxSizeMB)
	}
	return nil
}
