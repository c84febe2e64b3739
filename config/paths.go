package config

import (
	"os"
	"path/filepath"
)

// Dir returns the configuration directory path (~/.config/minigrep).
// It can be overridden with the MINIGREP_CONFIG_DIR environment variable.
func Dir() string {
	if d := os.Getenv("MINIGREP_CONFIG_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "minigrep")
	}
	return filepath.Join(home, ".config", "minigrep")
}

// SettingsFile returns the path to the config.yaml file.
func SettingsFile() string {
	return filepath.Join(Dir(), "config.yaml")
}
