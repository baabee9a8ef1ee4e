package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/reddit-link-grabber/internal/model"
	"github.com/handiism/reddit-link-grabber/internal/reddit"
)

// Settings holds all configuration options.
type Settings struct {
	// Clipboard settings
	DefaultMode string `json:"default_mode"` // overwrite, append

	// Extraction settings
	AnchorSelector string `json:"anchor_selector"`

	// Page loading
	MaxConcurrentPageReads int `json:"max_concurrent_page_reads"`

	// Output
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultMode:            model.ModeOverwrite.String(),
		AnchorSelector:         reddit.DefaultAnchorSelector,
		MaxConcurrentPageReads: 4,
		Verbose:                false,
	}
}

// DefaultPath returns the settings file location under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "reddit-link-grabber", "config.json")
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that every option holds a usable value.
func (s *Settings) Validate() error {
	if _, err := model.ParseMode(s.DefaultMode); err != nil {
		return fmt.Errorf("default_mode: %w", err)
	}
	if s.MaxConcurrentPageReads < 1 {
		return fmt.Errorf("max_concurrent_page_reads must be at least 1, got %d", s.MaxConcurrentPageReads)
	}
	return nil
}

// ToMode converts DefaultMode to a Mode, falling back to overwrite.
func (s *Settings) ToMode() model.Mode {
	mode, err := model.ParseMode(s.DefaultMode)
	if err != nil {
		return model.ModeOverwrite
	}
	return mode
}
