package platform

import (
	"strings"
)

// familyMap maps distribution names to their canonical family names.
// This is used to normalize variations of family strings from gopsutil.
var familyMap = map[string]string{
	"debian":   FamilyDebian,
	"ubuntu":   FamilyDebian, // gopsutil might return ubuntu as family
	"rhel":     FamilyRHEL,
	"centos":   FamilyRHEL,
	"rocky":    FamilyRHEL,
	"fedora":   FamilyFedora,
	"suse":     FamilySUSE,
	"opensuse": FamilySUSE,
	"arch":     FamilyArch,
	"manjaro":  FamilyArch,
	"alpine":   FamilyAlpine,
	"gentoo":   FamilyGentoo,
}

// unixLike lists the GOOS values served by the Linux prebuilt binaries.
var unixLike = map[string]bool{
	"linux":     true,
	"android":   true,
	"freebsd":   true,
	"openbsd":   true,
	"netbsd":    true,
	"dragonfly": true,
	"solaris":   true,
	"illumos":   true,
	"aix":       true,
}

// classify maps a GOOS value to its Class.
func classify(goos string) Class {
	switch {
	case goos == "darwin":
		return ClassMacOS
	case goos == "windows":
		return ClassWindows
	case unixLike[goos]:
		return ClassUnix
	default:
		return ClassOther
	}
}

// normalizeArch converts GOARCH and uname-style machine names to GOARCH
// naming. Unrecognized values are returned lower-cased.
func normalizeArch(arch string) string {
	a := strings.ToLower(strings.TrimSpace(arch))
	switch {
	case a == "amd64", a == "x86_64", a == "x64", a == "x86-64":
		return "amd64"
	case a == "386", a == "i386", a == "i686", a == "x86":
		return "386"
	case a == "arm64", a == "aarch64", strings.HasPrefix(a, "armv8"):
		return "arm64"
	case a == "arm", a == "armhf", a == "armel", strings.HasPrefix(a, "armv"):
		return "arm"
	default:
		return a
	}
}

// machineName maps a normalized architecture back to the name a kernel
// reports for it.
func machineName(arch string) string {
	switch arch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i686"
	case "arm64":
		return "aarch64"
	default:
		return arch
	}
}

// archBits returns the word size of a normalized architecture.
func archBits(arch string) int {
	switch arch {
	case "amd64", "arm64", "ppc64", "ppc64le", "s390x", "riscv64",
		"mips64", "mips64le", "loong64", "sparc64":
		return 64
	default:
		return 32
	}
}

// normalizePlatform converts platform IDs to lowercase for consistency.
func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

// mapFamily maps distribution family strings to canonical family names.
// Uses a package-level lookup table for explicit mapping.
func mapFamily(family string) string {
	normalized := strings.ToLower(strings.TrimSpace(family))
	if canonical, ok := familyMap[normalized]; ok {
		return canonical
	}

	// Return "unknown" for unrecognized families
	return FamilyUnknown
}
