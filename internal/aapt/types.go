package aapt

import (
	"fmt"
)

// Version identifies a major version of the asset packaging tool.
type Version int

const (
	// Version1 is the legacy aapt
	Version1 Version = 1
	// Version2 is aapt2
	Version2 Version = 2
)

// ParseVersionNumber converts a configured version number to a Version.
func ParseVersionNumber(n int) (Version, error) {
	v := Version(n)
	if !v.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVersion, n)
	}
	return v, nil
}

// Valid reports whether v is a known version.
func (v Version) Valid() bool {
	return v == Version1 || v == Version2
}

// BinaryName returns the base name of the binary for v.
func (v Version) BinaryName() string {
	if v == Version2 {
		return "aapt2"
	}
	return "aapt"
}

// String returns the string representation of the version
func (v Version) String() string {
	if !v.Valid() {
		return fmt.Sprintf("aapt(%d)", int(v))
	}
	return v.BinaryName()
}

// Binary is a materialized aapt executable.
// The caller owns the file; nothing removes it automatically.
type Binary struct {
	// Path is the executable file on disk.
	Path string
	// Resource is the bundle path the file was copied from.
	Resource string
	Version  Version
}

// LocateOptions configures Resolver.Locate.
type LocateOptions struct {
	// Version selects the bundled binary. With an explicit Path and
	// CheckVersion set, zero means "accept whatever the binary reports".
	Version Version
	// Path is a user-supplied binary that overrides the bundle.
	Path string
	// CheckVersion probes the binary and requires it to match Version.
	CheckVersion bool
}

// Location is the outcome of Resolver.Locate.
type Location struct {
	// Path is the absolute path to invoke.
	Path    string
	Version Version
	// Bundled is true when Path was materialized from the bundle.
	Bundled bool
	// Binary is the materialized binary; nil for user-supplied paths.
	Binary *Binary
}
