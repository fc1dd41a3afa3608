package config

import (
	"fmt"
	"time"

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/logging"
)

// Default values
const (
	DefaultVersion  = 2
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "info"
)

// Config represents the complete aaptkit configuration.
type Config struct {
	Aapt   AaptConfig   `json:"aapt"`
	Bundle BundleConfig `json:"bundle"`
	Log    LogConfig    `json:"log"`

	// Source is the file the config was read from; empty for defaults.
	Source string `json:"-"`
}

// AaptConfig selects the binary to run.
type AaptConfig struct {
	// Version is 1 (aapt) or 2 (aapt2)
	Version int `json:"version"`

	// Path to a user-supplied binary; overrides the bundle when set
	Path string `json:"path,omitempty"`

	// Timeout for the "version" probe
	Timeout time.Duration `json:"timeout"`

	// CheckVersion probes the binary before use
	CheckVersion bool `json:"check_version,omitempty"`
}

// BundleConfig controls materialization of bundled binaries.
type BundleConfig struct {
	// Strict refuses binaries missing from the bundle manifest
	Strict bool `json:"strict,omitempty"`

	// TempDir receives materialized binaries; empty means the OS default
	TempDir string `json:"temp_dir,omitempty"`
}

// LogConfig contains logging options.
type LogConfig struct {
	Level string `json:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Aapt: AaptConfig{
			Version: DefaultVersion,
			Timeout: DefaultTimeout,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate performs basic validation on a Config.
func (c *Config) Validate() error {
	if c.Aapt.Version != 1 && c.Aapt.Version != 2 {
		return &ValidationError{
			Field:   "aapt.version",
			Message: fmt.Sprintf("must be 1 or 2, got %d", c.Aapt.Version),
		}
	}

	if c.Aapt.Timeout < 0 {
		return &ValidationError{Field: "aapt.timeout", Message: "cannot be negative"}
	}

	if c.Log.Level != "" && !logging.ValidLevel(c.Log.Level) {
		return &ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("unknown level %q (expected debug, info, warn or error)", c.Log.Level),
		}
	}

	return nil
}

// ValidationError represents a config validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "config validation failed for " + e.Field + ": " + e.Message
	}
	return "config validation failed: " + e.Message
}
