package platform

import (
	"context"
	"errors"
	"runtime"
	"testing"
)

func TestRealDetector_Detect(t *testing.T) {
	detector := NewDetector()
	ctx := context.Background()

	info, err := detector.Detect(ctx)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}

	if info.OS != runtime.GOOS {
		t.Errorf("OS = %v, want %v", info.OS, runtime.GOOS)
	}

	if info.ArchRaw != runtime.GOARCH {
		t.Errorf("ArchRaw = %v, want %v", info.ArchRaw, runtime.GOARCH)
	}

	if info.Arch != normalizeArch(runtime.GOARCH) {
		t.Errorf("Arch = %v, want %v", info.Arch, normalizeArch(runtime.GOARCH))
	}

	if info.Bits != 32 && info.Bits != 64 {
		t.Errorf("Bits = %d, want 32 or 64", info.Bits)
	}

	// A 64-bit process can only run on a 64-bit host
	if archBits(info.Arch) == 64 && !info.Is64Bit() {
		t.Errorf("64-bit process reported a 32-bit host: %+v", info)
	}

	if runtime.GOOS == "linux" {
		if info.Platform != "" && info.Family == "" {
			t.Error("Family should be set when Platform is set")
		}
	} else if info.Platform != "" || info.Family != "" || info.Version != "" {
		t.Errorf("distro fields should be empty on non-Linux, got %+v", info)
	}
}

func TestRealDetector_KernelArch(t *testing.T) {
	tests := []struct {
		name        string
		machine     string
		err         error
		wantHost    string
		wantMachine string
	}{
		{"uname aarch64", "aarch64", nil, "arm64", "aarch64"},
		{"uname armv7l", "armv7l", nil, "arm", "armv7l"},
		{"uname x86_64", "x86_64", nil, "amd64", "x86_64"},
		{"padded", " x86_64\n", nil, "amd64", "x86_64"},
		{"query fails", "", errors.New("uname failed"), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := &RealDetector{
				kernelArch: func() (string, error) { return tt.machine, tt.err },
			}

			info, err := detector.Detect(context.Background())
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}

			if info.HostArch != tt.wantHost {
				t.Errorf("HostArch = %q, want %q", info.HostArch, tt.wantHost)
			}
			if info.Machine != tt.wantMachine {
				t.Errorf("Machine = %q, want %q", info.Machine, tt.wantMachine)
			}

			wantArch := tt.wantHost
			if wantArch == "" {
				wantArch = info.Arch
			}
			if info.Architecture() != wantArch {
				t.Errorf("Architecture() = %q, want %q", info.Architecture(), wantArch)
			}

			// Word size follows the process except on Windows
			wantBits := archBits(info.Arch)
			if runtime.GOOS == "windows" {
				wantBits = archBits(wantArch)
			}
			if info.Bits != wantBits {
				t.Errorf("Bits = %d, want %d", info.Bits, wantBits)
			}
		})
	}
}

func TestInfo_GetDistro(t *testing.T) {
	tests := []struct {
		name string
		info *Info
		want *Distro
	}{
		{
			name: "Linux with distro info",
			info: &Info{
				OS:       "linux",
				Arch:     "amd64",
				Platform: "ubuntu",
				Family:   "debian",
				Version:  "22.04",
			},
			want: &Distro{
				ID:      "ubuntu",
				Family:  "debian",
				Version: "22.04",
			},
		},
		{
			name: "Linux without distro info",
			info: &Info{OS: "linux", Arch: "amd64"},
			want: nil,
		},
		{
			name: "macOS",
			info: &Info{OS: "darwin", Arch: "arm64"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.info.GetDistro()
			if got == nil && tt.want == nil {
				return
			}
			if got == nil || tt.want == nil {
				t.Errorf("GetDistro() = %v, want %v", got, tt.want)
				return
			}
			if *got != *tt.want {
				t.Errorf("GetDistro() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInfo_Class(t *testing.T) {
	tests := []struct {
		os   string
		want Class
	}{
		{"darwin", ClassMacOS},
		{"linux", ClassUnix},
		{"android", ClassUnix},
		{"freebsd", ClassUnix},
		{"solaris", ClassUnix},
		{"aix", ClassUnix},
		{"windows", ClassWindows},
		{"plan9", ClassOther},
		{"js", ClassOther},
		{"", ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.os, func(t *testing.T) {
			info := &Info{OS: tt.os}
			if got := info.Class(); got != tt.want {
				t.Errorf("Class() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInfo_Is64Bit(t *testing.T) {
	tests := []struct {
		name string
		info *Info
		want bool
	}{
		{"explicit 64", &Info{Arch: "386", Bits: 64}, true},
		{"explicit 32", &Info{Arch: "amd64", Bits: 32}, false},
		{"32-bit process on 64-bit linux", &Info{OS: "linux", Arch: "386", HostArch: "amd64"}, false},
		{"32-bit process on 64-bit windows", &Info{OS: "windows", Arch: "386", HostArch: "amd64"}, true},
		{"derived from process arch", &Info{Arch: "arm"}, false},
		{"arm64", &Info{Arch: "arm64"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Is64Bit(); got != tt.want {
				t.Errorf("Is64Bit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInfo_MachineName(t *testing.T) {
	tests := []struct {
		name string
		info *Info
		want string
	}{
		{"reported by kernel", &Info{Arch: "arm64", HostArch: "arm64", Machine: "aarch64"}, "aarch64"},
		{"kernel name kept verbatim", &Info{Arch: "arm", HostArch: "arm", Machine: "armv7l"}, "armv7l"},
		{"derived from arm64", &Info{Arch: "arm64"}, "aarch64"},
		{"derived from host arch", &Info{Arch: "386", HostArch: "amd64"}, "x86_64"},
		{"derived from 386", &Info{Arch: "386"}, "i686"},
		{"arm stays arm", &Info{Arch: "arm"}, "arm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.MachineName(); got != tt.want {
				t.Errorf("MachineName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInfo_BooleanMethods(t *testing.T) {
	tests := []struct {
		name   string
		info   *Info
		checks map[string]bool
	}{
		{
			name: "Linux amd64 Debian",
			info: &Info{OS: "linux", Arch: "amd64", Family: "debian"},
			checks: map[string]bool{
				"IsLinux":        true,
				"IsMacOS":        false,
				"IsWindows":      false,
				"IsARM":          false,
				"IsAppleSilicon": false,
				"IsDebianFamily": true,
				"IsRHELFamily":   false,
			},
		},
		{
			name: "macOS arm64 (Apple Silicon)",
			info: &Info{OS: "darwin", Arch: "arm64"},
			checks: map[string]bool{
				"IsMacOS":        true,
				"IsARM":          true,
				"IsAppleSilicon": true,
			},
		},
		{
			name: "macOS amd64 build under Rosetta",
			info: &Info{OS: "darwin", Arch: "amd64", HostArch: "arm64"},
			checks: map[string]bool{
				"IsMacOS":        true,
				"IsARM":          true,
				"IsAppleSilicon": true,
			},
		},
		{
			name: "Windows on ARM",
			info: &Info{OS: "windows", Arch: "386", HostArch: "arm64"},
			checks: map[string]bool{
				"IsWindows": true,
				"IsARM":     true,
			},
		},
		{
			name: "Linux amd64 RHEL",
			info: &Info{OS: "linux", Arch: "amd64", Family: "rhel"},
			checks: map[string]bool{
				"IsLinux":      true,
				"IsRHELFamily": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for methodName, expected := range tt.checks {
				var got bool
				switch methodName {
				case "IsLinux":
					got = tt.info.IsLinux()
				case "IsMacOS":
					got = tt.info.IsMacOS()
				case "IsWindows":
					got = tt.info.IsWindows()
				case "IsARM":
					got = tt.info.IsARM()
				case "IsAppleSilicon":
					got = tt.info.IsAppleSilicon()
				case "IsDebianFamily":
					got = tt.info.IsDebianFamily()
				case "IsRHELFamily":
					got = tt.info.IsRHELFamily()
				default:
					t.Fatalf("Unknown method: %s", methodName)
				}

				if got != expected {
					t.Errorf("%s() = %v, want %v", methodName, got, expected)
				}
			}
		})
	}
}

func TestInfo_Label(t *testing.T) {
	info := &Info{OS: "windows", Arch: "386", HostArch: "arm64"}
	if got := info.Label(); got != "windows/arm64" {
		t.Errorf("Label() = %q, want windows/arm64", got)
	}
}

func TestStaticDetector(t *testing.T) {
	expected := &Info{OS: "linux", Arch: "amd64", Bits: 64}

	info, err := StaticDetector{Info: expected}.Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if info != expected {
		t.Errorf("Detect() = %+v, want %+v", info, expected)
	}

	if _, err := (StaticDetector{}).Detect(context.Background()); err == nil {
		t.Error("expected error for empty static detector")
	}
}
