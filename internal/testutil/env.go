// Package testutil provides utilities for testing aaptkit in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Env describes the isolated directories created by SetupTestEnv.
type Env struct {
	// Root is the temp directory holding everything else
	Root string
	// ConfigHome is $XDG_CONFIG_HOME
	ConfigHome string
	// ConfigFile is where aaptkit looks for its default config
	ConfigFile string
	// TempDir receives materialized binaries
	TempDir string
}

// SetupTestEnv creates isolated test directories for each test.
// This ensures aaptkit tests never read the user's actual configuration
// or pick up an aapt override from the developer's shell.
//
// The cleanup function is automatically handled by t.TempDir(),
// so callers don't need to manually clean up.
func SetupTestEnv(t *testing.T) Env {
	t.Helper()

	// Create temp directory (auto-cleaned by testing framework)
	tmpDir := t.TempDir()

	env := Env{
		Root:       tmpDir,
		ConfigHome: filepath.Join(tmpDir, "config"),
		TempDir:    filepath.Join(tmpDir, "tmp"),
	}
	env.ConfigFile = filepath.Join(env.ConfigHome, "aaptkit", "aaptkit.lua")

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	// Materialized binaries land here when no temp_dir is configured
	t.Setenv("TMPDIR", env.TempDir)

	// Overrides from the surrounding shell would leak into results
	t.Setenv("AAPTKIT_CONFIG", "")
	t.Setenv("AAPTKIT_AAPT_PATH", "")

	dirs := []string{
		filepath.Dir(env.ConfigFile),
		filepath.Join(tmpDir, "home"),
		env.TempDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}

	return env
}

// WriteConfig writes content to the default config location.
func (e Env) WriteConfig(t *testing.T, content string) string {
	t.Helper()
	if err := os.WriteFile(e.ConfigFile, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return e.ConfigFile
}

// WriteExecutable writes a script to the environment root and returns its
// path. Tests using it should skip on Windows.
func (e Env) WriteExecutable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.Root, name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
