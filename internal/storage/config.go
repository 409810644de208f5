package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Region        string `json:"region"`        // ISO 3166 region for number formatting
	CallProvider  string `json:"callProvider"`  // selected call provider, empty for none
	VideoCalling  bool   `json:"videoCalling"`  // offer the video call shortcut
	ExtraNumbers  *bool  `json:"extraNumbers"`  // show extra call numbers on rows
	PhotoPosition string `json:"photoPosition"` // "left" or "right"
	RTL           bool   `json:"rtl"`           // right-to-left layout
	LogFile       string `json:"logFile"`       // empty disables logging
	LogLevel      string `json:"logLevel"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	extra := true
	return Config{
		Region:        "US",
		ExtraNumbers:  &extra,
		PhotoPosition: "left",
		LogLevel:      "info",
	}
}

// ShowExtraNumbers reports whether rows carry the extra call number column.
func (c Config) ShowExtraNumbers() bool {
	return c.ExtraNumbers == nil || *c.ExtraNumbers
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Region == "" {
		config.Region = defaults.Region
	}
	config.Region = strings.ToUpper(config.Region)
	if config.ExtraNumbers == nil {
		config.ExtraNumbers = defaults.ExtraNumbers
	}
	if config.PhotoPosition == "" {
		config.PhotoPosition = defaults.PhotoPosition
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/dialer/config.json
func DefaultConfigFilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
