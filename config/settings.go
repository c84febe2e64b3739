package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the defaults read from config.yaml. Command line flags
// take precedence over every field.
type Settings struct {
	Editor string    `yaml:"editor"`
	Color  string    `yaml:"color"` // auto, always or never
	Log    LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`
}

// Defaults returns Settings with sensible defaults.
func Defaults() Settings {
	return Settings{
		Color: "auto",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadSettings reads settings from path, or from SettingsFile when path
// is empty. A missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		path = SettingsFile()
	}
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return Defaults(), fmt.Errorf("invalid color %q in %s (want auto, always or never)", cfg.Color, path)
	}

	return cfg, nil
}
