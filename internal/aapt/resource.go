package aapt

import (
	"fmt"
	"strings"

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/platform"
)

// Bundle directories per OS family.
const (
	DirMacOS   = "macosx"
	DirLinux   = "linux"
	DirWindows = "windows"
)

// ResourcePath returns the bundle path of the binary for v on the given
// platform.
func ResourcePath(v Version, info *platform.Info) (string, error) {
	if !v.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidVersion, int(v))
	}
	if info == nil {
		return "", fmt.Errorf("platform info is required")
	}

	name := v.BinaryName()
	if info.Is64Bit() {
		name += "_64"
	}
	// Matched against the kernel's own name: "aarch64" has no "arm" in it
	// and gets the x86-64 build, while "arm", "armv7l" and "arm64" do.
	machine := strings.ToLower(info.MachineName())

	switch info.Class() {
	case platform.ClassMacOS:
		// macOS binaries are universal x86_64/arm64 builds
		if !info.Is64Bit() {
			return "", fmt.Errorf("%w: 32 bit OS detected, no 32 bit binaries available", ErrUnsupportedPlatform)
		}
		return DirMacOS + "/" + name, nil

	case platform.ClassUnix:
		// ELF32 (80386) and ELF64 (x86-64) only
		if strings.Contains(machine, "arm") {
			return "", fmt.Errorf("%w: ARM CPU detected (%s), only x86 and x86-64 binaries available", ErrUnsupportedPlatform, machine)
		}
		return DirLinux + "/" + name, nil

	case platform.ClassWindows:
		// Windows on ARM runs the 32-bit x86 build under emulation
		if strings.Contains(machine, "arm") {
			name = v.BinaryName()
		}
		return DirWindows + "/" + name + ".exe", nil

	default:
		return "", fmt.Errorf("%w: could not identify platform: %s", ErrUnsupportedPlatform, info.Label())
	}
}
