// Package config loads the keygrabd daemon configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the daemon configuration. The zero value is not valid; start
// from DefaultConfig.
type Config struct {
	// Hotkey is the combination the daemon registers, e.g. "ctrl+shift+f12".
	Hotkey string `yaml:"hotkey"`
	// Notify controls the desktop notification on trigger.
	Notify bool `yaml:"notify"`
	// Display overrides $DISPLAY for the X11 connection (Linux only).
	Display string `yaml:"display,omitempty"`
	// OpenAttempts overrides the X11 connection retry budget; 0 keeps the
	// built-in default.
	OpenAttempts int `yaml:"open_attempts,omitempty"`
	// OpenBackoffMS is the delay between X11 connection attempts.
	OpenBackoffMS int `yaml:"open_backoff_ms,omitempty"`
	// PollIntervalMS is the key-state polling cadence (Windows only);
	// 0 keeps the built-in default.
	PollIntervalMS int `yaml:"poll_interval_ms,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Hotkey: "ctrl+shift+f12",
		Notify: true,
	}
}

// DefaultConfigPath returns ~/.config/keygrab/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "keygrab", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file is
// not an error: defaults are returned.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from an explicit path, applying
// defaults for anything the file leaves unset.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks structural constraints. Hotkey syntax is checked where the
// combination is parsed, since the valid key space is platform-specific.
func (c *Config) Validate() error {
	if c.Hotkey == "" {
		return fmt.Errorf("hotkey must not be empty")
	}
	if c.OpenAttempts < 0 {
		return fmt.Errorf("open_attempts must not be negative, got %d", c.OpenAttempts)
	}
	if c.OpenBackoffMS < 0 {
		return fmt.Errorf("open_backoff_ms must not be negative, got %d", c.OpenBackoffMS)
	}
	if c.PollIntervalMS < 0 {
		return fmt.Errorf("poll_interval_ms must not be negative, got %d", c.PollIntervalMS)
	}
	return nil
}
