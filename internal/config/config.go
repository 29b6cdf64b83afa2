// Package config provides centralized configuration for the exporter.
// It loads settings from environment variables with sensible defaults and
// validates everything on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"strings"
)

// Config holds all exporter configuration. The pipeline receives a Config
// value explicitly; there is no module-level state to edit before a run.
type Config struct {
	Asphyxia AsphyxiaConfig
	Output   OutputConfig
	Logging  LoggingConfig
}

// AsphyxiaConfig holds settings for the source database.
type AsphyxiaConfig struct {
	// DatabasePath is the path to the SDVX plugin's NeDB file
	// (default: sdvx@asphyxia.db, co-located with the binary)
	DatabasePath string `env:"ASPHYXIA_DB_PATH" default:"sdvx@asphyxia.db"`

	// ProfileID is the player profile to export, as shown in the
	// Asphyxia web UI (required)
	ProfileID string `env:"ASPHYXIA_PROFILE_ID" required:"true"`

	// PreserveFails keeps failed plays in the export (default: true)
	PreserveFails bool `env:"PRESERVE_FAILS" default:"true"`
}

// OutputConfig holds settings for the generated import file.
type OutputConfig struct {
	// Path is where the batch-manual JSON is written (default: output.json)
	Path string `env:"OUTPUT_FILE" default:"output.json"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks that the configuration is usable.
// Returns an error describing all validation failures at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Asphyxia.DatabasePath == "" {
		errs = append(errs, "ASPHYXIA_DB_PATH must not be empty")
	}
	if c.Asphyxia.ProfileID == "" {
		errs = append(errs, "ASPHYXIA_PROFILE_ID is required")
	} else if strings.ContainsAny(c.Asphyxia.ProfileID, " \t") {
		errs = append(errs, fmt.Sprintf("ASPHYXIA_PROFILE_ID (%q) must not contain whitespace", c.Asphyxia.ProfileID))
	}
	if c.Output.Path == "" {
		errs = append(errs, "OUTPUT_FILE must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a string representation of the config for logging.
// The profile ID is truncated; it is an account identifier users may not
// want in shared logs.
func (c *Config) String() string {
	profile := c.Asphyxia.ProfileID
	if len(profile) > 4 {
		profile = profile[:4] + "..."
	}
	var b strings.Builder
	b.WriteString("Config{")
	b.WriteString(fmt.Sprintf("Asphyxia: {DatabasePath: %q, ProfileID: %q, PreserveFails: %v}, ",
		c.Asphyxia.DatabasePath, profile, c.Asphyxia.PreserveFails))
	b.WriteString(fmt.Sprintf("Output: {Path: %q}, ", c.Output.Path))
	b.WriteString(fmt.Sprintf("Logging: {Level: %q, Format: %q}", c.Logging.Level, c.Logging.Format))
	b.WriteString("}")
	return b.String()
}
