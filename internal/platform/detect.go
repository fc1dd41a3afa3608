package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct {
	// kernelArch reports the machine name of the running kernel.
	kernelArch func() (string, error)
}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{kernelArch: host.KernelArch}
}

// Detect performs platform detection and returns platform information.
//
// The process architecture comes from runtime.GOARCH. The host architecture
// comes from the kernel (uname on Unix, GetNativeSystemInfo on Windows) via
// gopsutil, so an x86 build running under emulation on ARM Windows reports
// the ARM host. The kernel's machine name is kept verbatim next to the
// normalized form. If the kernel query fails, the host is assumed to match
// the process.
//
// Bits follows the process on Unix-like systems and the host on Windows.
//
// On Linux, distribution details are filled in when gopsutil can read them;
// detection failures leave them empty.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	arch := normalizeArch(runtime.GOARCH)
	if arch == "" {
		return nil, fmt.Errorf("platform detection failed: empty GOARCH")
	}

	info := &Info{
		OS:      runtime.GOOS,
		Arch:    arch,
		ArchRaw: runtime.GOARCH,
	}

	// Kernel view of the CPU; a failed query leaves the process view
	if d.kernelArch != nil {
		if machine, err := d.kernelArch(); err == nil && strings.TrimSpace(machine) != "" {
			info.Machine = strings.TrimSpace(machine)
			info.HostArch = normalizeArch(machine)
		}
	}
	info.Bits = wordSize(info)

	// Distribution details (Linux only)
	if runtime.GOOS == "linux" {
		platform, family, version, err := host.PlatformInformationWithContext(ctx)
		if err != nil {
			// Cancellation is fatal, anything else keeps OS/arch only
			if ctx.Err() != nil {
				return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
			}
			return info, nil
		}

		platform = normalizePlatform(platform)
		family = mapFamily(family)
		version = normalizePlatform(version)

		// Only set fields if we got valid data
		if platform != "" {
			info.Platform = platform
			info.Family = family
			info.Version = version
		}
	}

	return info, nil
}
