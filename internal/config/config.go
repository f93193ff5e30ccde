// Package config handles the configuration directory and the persisted
// settings file.
package config

import (
	"os"
	"path/filepath"
)

const (
	// DirName is the configuration directory name under the user's home.
	DirName = ".minimado-cli"

	// SettingsFile is the settings filename.
	SettingsFile = "config.json"
)

// Config holds configuration paths and per-invocation settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Animate enables the progress spinner animation. Only set when stdout
	// is a terminal.
	Animate bool

	// UserID is the identity resolved for this invocation. Empty for
	// commands that do not talk to the service.
	UserID string
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses $HOME/.minimado-cli.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir}, nil
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return DirName
	}
	return filepath.Join(home, DirName)
}

// SettingsPath returns the path to the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}
