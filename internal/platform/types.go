// Package platform detects the host operating system and CPU so callers can
// pick the prebuilt binary that runs on it.
//
// Detection combines runtime.GOOS/GOARCH with gopsutil's view of the kernel,
// so a 32-bit build on 64-bit Windows still reports a 64-bit host. On Linux
// the distribution is detected as well; the result is also exposed to Lua
// configurations as a read-only platform table.
package platform

import (
	"context"
	"fmt"
)

// Linux distribution family constants.
// These represent canonical family names for grouping related distributions.
const (
	FamilyDebian  = "debian"  // Debian, Ubuntu, Linux Mint
	FamilyRHEL    = "rhel"    // RHEL, CentOS, Rocky Linux, AlmaLinux
	FamilyFedora  = "fedora"  // Fedora
	FamilySUSE    = "suse"    // openSUSE, SLES
	FamilyArch    = "arch"    // Arch Linux, Manjaro
	FamilyAlpine  = "alpine"  // Alpine Linux
	FamilyGentoo  = "gentoo"  // Gentoo
	FamilyUnknown = "unknown" // Unrecognized distributions
)

// Class groups operating systems by the prebuilt binaries they can run.
type Class int

const (
	ClassOther Class = iota
	ClassMacOS
	ClassUnix
	ClassWindows
)

// String returns the string representation of the class
func (c Class) String() string {
	switch c {
	case ClassMacOS:
		return "macos"
	case ClassUnix:
		return "unix"
	case ClassWindows:
		return "windows"
	default:
		return "other"
	}
}

// Info contains platform detection information.
type Info struct {
	OS       string // "linux", "darwin", "windows"
	Arch     string // process architecture, normalized ("amd64", "386", "arm64", "arm")
	ArchRaw  string // original GOARCH
	HostArch string // kernel architecture, normalized; empty if detection failed
	Machine  string // kernel machine name as reported ("aarch64", "armv7l", "x86_64")
	Bits     int    // 32 or 64: process word size on Unix, host word size on Windows
	Platform string // distro ID (Linux only, e.g., "ubuntu", "arch")
	Family   string // canonical family (e.g., "debian", "rhel", "arch")
	Version  string // distro version (Linux only, e.g., "22.04")
}

// Distro contains Linux distribution information.
// This is nil on non-Linux platforms.
type Distro struct {
	ID      string // distro ID (e.g., "ubuntu")
	Family  string // canonical family (e.g., "debian")
	Version string // version (e.g., "22.04")
}

// GetDistro returns distro information if this is a Linux platform.
// Returns nil for non-Linux platforms or if distro detection failed.
func (i *Info) GetDistro() *Distro {
	if i.OS != "linux" || i.Platform == "" {
		return nil
	}
	return &Distro{
		ID:      i.Platform,
		Family:  i.Family,
		Version: i.Version,
	}
}

// Class classifies the operating system.
func (i *Info) Class() Class {
	return classify(i.OS)
}

// Architecture returns the host CPU architecture, falling back to the
// process architecture when the kernel could not be queried.
func (i *Info) Architecture() string {
	if i.HostArch != "" {
		return i.HostArch
	}
	return i.Arch
}

// MachineName returns the kernel's own name for the CPU, e.g. "aarch64"
// rather than "arm64". Without a kernel report it is derived from the
// detected architecture.
func (i *Info) MachineName() string {
	if i.Machine != "" {
		return i.Machine
	}
	return machineName(i.Architecture())
}

// Is64Bit reports whether binaries should be picked for a 64-bit system.
func (i *Info) Is64Bit() bool {
	if i.Bits != 0 {
		return i.Bits == 64
	}
	return wordSize(i) == 64
}

// wordSize is the process word size on Unix-like systems and the host word
// size on Windows, where WOW64 hides a 64-bit OS from a 32-bit process.
func wordSize(i *Info) int {
	if i.Class() == ClassWindows {
		return archBits(i.Architecture())
	}
	return archBits(i.Arch)
}

// Label identifies the platform in diagnostics, e.g. "linux/amd64".
func (i *Info) Label() string {
	return fmt.Sprintf("%s/%s", i.OS, i.Architecture())
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == "darwin"
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == "windows"
}

// IsARM returns true for any ARM host, 32 or 64 bit.
func (i *Info) IsARM() bool {
	arch := i.Architecture()
	return arch == "arm" || arch == "arm64"
}

// IsAppleSilicon returns true if running on Apple Silicon (macOS + arm64).
func (i *Info) IsAppleSilicon() bool {
	return i.OS == "darwin" && i.Architecture() == "arm64"
}

// IsDebianFamily returns true if the Linux distribution is Debian-based.
func (i *Info) IsDebianFamily() bool {
	return i.OS == "linux" && i.Family == FamilyDebian
}

// IsRHELFamily returns true if the Linux distribution is RHEL-based.
func (i *Info) IsRHELFamily() bool {
	return i.OS == "linux" && i.Family == FamilyRHEL
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}

// StaticDetector returns a fixed Info. It is used when the platform is
// already known, and by tests simulating other hosts.
type StaticDetector struct {
	Info *Info
}

// Detect returns the configured Info.
func (d StaticDetector) Detect(ctx context.Context) (*Info, error) {
	if d.Info == nil {
		return nil, fmt.Errorf("static detector has no platform info")
	}
	return d.Info, nil
}
