// Package config provides configuration management for reddit-link-grabber.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Validation and conversion to the clipboard Mode
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Overwrite mode, default anchor selector, quiet output
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.DefaultMode = "append"
//	err := settings.Save(config.DefaultPath())
package config
