// Package config provides configuration management for modrinth-downloader.
//
// This package handles:
//   - Loading and saving settings from TOML files
//   - Default configuration values
//   - Validation before a run starts
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Files land below the current directory
//	// Five downloads run at a time
//	// Registry hashes are verified
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// A config file only needs the keys it changes:
//
//	output_root = "/srv/minecraft"
//	max_concurrency = 8
//	report_format = "markdown"
//
// # Saving Settings
//
//	settings.MaxConcurrency = 3
//	err := settings.Save("/path/to/config.toml")
package config
