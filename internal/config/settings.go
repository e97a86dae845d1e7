package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultAPIBaseURL is the Modrinth v2 API root.
const DefaultAPIBaseURL = "https://api.modrinth.com/v2"

// Settings holds all configuration options.
type Settings struct {
	// Output settings
	OutputRoot string `toml:"output_root"`
	LockFile   string `toml:"lock_file"`

	// Download settings
	MaxConcurrency        int  `toml:"max_concurrency"`
	RequestTimeoutSeconds int  `toml:"request_timeout_seconds"`
	VerifyHashes          bool `toml:"verify_hashes"`

	// Registry settings
	APIBaseURL       string `toml:"api_base_url"`
	UserAgent        string `toml:"user_agent"`
	DirectLookup     bool   `toml:"direct_lookup"`
	UseVersionFilter bool   `toml:"use_version_filter"`

	// Report settings
	ReportFormat string `toml:"report_format"` // table, markdown, csv
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputRoot: ".",
		LockFile:   ".modrinth-dl.lock",

		MaxConcurrency:        5,
		RequestTimeoutSeconds: 60,
		VerifyHashes:          true,

		APIBaseURL:       DefaultAPIBaseURL,
		DirectLookup:     true,
		UseVersionFilter: true,

		ReportFormat: "table",
	}
}

// Load reads settings from a TOML file. Keys missing from the file keep
// their default values; a missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a TOML file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that the settings can drive a run.
func (s *Settings) Validate() error {
	var errs []error
	if s.MaxConcurrency < 1 {
		errs = append(errs, fmt.Errorf("max_concurrency must be at least 1, got %d", s.MaxConcurrency))
	}
	if s.RequestTimeoutSeconds < 1 {
		errs = append(errs, fmt.Errorf("request_timeout_seconds must be at least 1, got %d", s.RequestTimeoutSeconds))
	}
	if strings.TrimSpace(s.LockFile) == "" {
		errs = append(errs, errors.New("lock_file must not be empty"))
	}
	if strings.TrimSpace(s.APIBaseURL) == "" {
		errs = append(errs, errors.New("api_base_url must not be empty"))
	}
	switch s.ReportFormat {
	case "table", "markdown", "csv":
	default:
		errs = append(errs, fmt.Errorf("report_format must be table, markdown or csv, got %q", s.ReportFormat))
	}
	return errors.Join(errs...)
}

// LockPath returns the lock file location. Relative lock paths are placed
// inside the output root.
func (s *Settings) LockPath() string {
	if s.LockFile == "" || filepath.IsAbs(s.LockFile) {
		return s.LockFile
	}
	return filepath.Join(s.OutputRoot, s.LockFile)
}
