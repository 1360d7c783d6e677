// Package config loads and saves user preferences in TOML format.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/asheshgoplani/launchdeck/internal/logging"
)

var configLog = logging.ForComponent(logging.CompConfig)

// ConfigFileName is the TOML config file under the launchdeck directory.
const ConfigFileName = "config.toml"

// Result limit bounds applied to max_results on every search.
const (
	MinResultLimit = 10
	MaxResultLimit = 60
)

// Config represents user-facing configuration.
type Config struct {
	// EnableAppResults includes installed applications in search results.
	EnableAppResults bool `toml:"enable_app_results"`

	// EnableBookmarkResults includes browser bookmarks in search results.
	EnableBookmarkResults bool `toml:"enable_bookmark_results"`

	// MaxResults caps the ranked result list; clamped to [10,60], 0 means 10.
	MaxResults int `toml:"max_results"`

	// SystemToolExclusions drops applications whose path starts with one of
	// these prefixes (or contains it, for "{...}" package-id patterns).
	SystemToolExclusions []string `toml:"system_tool_exclusions"`

	// GlobalHotkey is the summon binding, e.g. "Alt+Space".
	// Presentation-only: the search core never reads it.
	GlobalHotkey string `toml:"global_hotkey"`

	// LaunchAtStartup starts the daemon at login. Presentation-only.
	LaunchAtStartup bool `toml:"launch_at_startup"`
}

// Default returns the configuration used when no file exists yet.
func Default() Config {
	return Config{
		EnableAppResults:      true,
		EnableBookmarkResults: true,
		MaxResults:            MinResultLimit,
		GlobalHotkey:          "Alt+Space",
	}
}

// ResultLimit returns MaxResults clamped to the recognized range.
func (c Config) ResultLimit() int {
	limit := c.MaxResults
	if limit <= 0 {
		return MinResultLimit
	}
	if limit < MinResultLimit {
		return MinResultLimit
	}
	if limit > MaxResultLimit {
		return MaxResultLimit
	}
	return limit
}

// Dir returns the launchdeck base directory (~/.launchdeck).
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}
	return filepath.Join(homeDir, ".launchdeck"), nil
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Load reads the config file, returning defaults when it does not exist.
// A malformed file is logged and replaced by defaults rather than failing
// startup.
func Load() Config {
	path, err := Path()
	if err != nil {
		return Default()
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file at an explicit path.
func LoadFrom(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			configLog.Warn("config_read_failed",
				slog.String("path", path), slog.String("error", err.Error()))
		}
		return cfg
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		configLog.Warn("config_parse_failed",
			slog.String("path", path), slog.String("error", err.Error()))
		return Default()
	}
	return cfg
}

// Save writes the config to the default path, creating the directory.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the config to an explicit path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}
