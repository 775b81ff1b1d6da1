// Package config persists UI preferences. The engine itself keeps no state
// across sessions; only the shell's presentation settings are saved.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/tally/internal/errors"
)

// Config holds the application configuration
type Config struct {
	Theme        string `json:"theme,omitempty"`         // UI theme name (e.g., "slate", "nord")
	WelcomeShown bool   `json:"welcome_shown,omitempty"` // Whether the first-run help hint has been shown

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tally"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("", err)
	}

	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		path, err := configPath()
		if err != nil {
			return errors.ConfigSaveFailed("", err)
		}
		c.filePath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	return nil
}

// GetTheme returns the saved theme name, or empty for the default
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme records the theme name
func (c *Config) SetTheme(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = name
}

// IsWelcomeShown reports whether the first-run hint has been displayed
func (c *Config) IsWelcomeShown() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// SetWelcomeShown records that the first-run hint has been displayed
func (c *Config) SetWelcomeShown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = true
}

// Path returns the config file location. Used by the clean command.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}
