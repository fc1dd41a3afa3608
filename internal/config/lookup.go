package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath returns $XDG_CONFIG_HOME/aaptkit/aaptkit.lua, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "aaptkit", FileName), nil
}

// Find returns the config file to load and whether the user asked for it
// explicitly (through explicitPath or $AAPTKIT_CONFIG).
func Find(explicitPath string) (path string, explicit bool, err error) {
	if explicitPath != "" {
		return explicitPath, true, nil
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, true, nil
	}
	path, err = DefaultPath()
	return path, false, err
}

// Load finds and parses the configuration, then applies environment
// overrides.
func Load(ctx context.Context, parser *Parser, explicitPath string) (*Config, error) {
	config, err := LoadFile(ctx, parser, explicitPath)
	if err != nil {
		return nil, err
	}

	ApplyEnv(config)
	return config, nil
}

// LoadFile finds and parses the configuration as written on disk, without
// environment overrides. A missing default file yields Default(); a missing
// explicit file is an error.
func LoadFile(ctx context.Context, parser *Parser, explicitPath string) (*Config, error) {
	path, explicit, err := Find(explicitPath)
	if err != nil {
		return nil, err
	}

	config, err := parser.ParseFile(ctx, path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		config = Default()
	default:
		return nil, err
	}

	return config, nil
}

// ApplyEnv overrides file settings with environment variables.
func ApplyEnv(config *Config) {
	if path := os.Getenv(EnvAaptPath); path != "" {
		config.Aapt.Path = path
	}
}
