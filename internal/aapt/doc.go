// Package aapt locates the Android Asset Packaging Tool for the host.
//
// aaptkit ships aapt and aapt2 as prebuilt binaries for macOS, Linux and
// Windows. A Resolver picks the binary matching the detected platform,
// materializes it from the bundle as an executable file, and can identify
// the version of any aapt binary from its "version" banner.
//
// # Platform selection
//
// The resource name is the binary name ("aapt" or "aapt2") with a "_64"
// suffix on 64-bit systems, under one directory per OS family:
//   - macOS: macosx/<name>; 64-bit only (the binaries are universal)
//   - Unix-like: linux/<name>; refused when the kernel machine name
//     contains "arm" ("armv7l"), so "aarch64" hosts get the x86-64 build
//   - Windows: windows/<name>.exe; machine names containing "arm" get the
//     32-bit x86 binary, which runs under emulation
//
// # Usage
//
//	r, err := aapt.NewResolver(aapt.Config{
//	    Detector:     platform.NewDetector(),
//	    Materializer: b, // *bundle.Bundle
//	})
//	if err != nil {
//	    return err
//	}
//
//	bin, err := r.Aapt2(ctx)
//	if err != nil {
//	    return err
//	}
//
//	// A user-supplied binary takes precedence over the bundled one
//	path, err := r.ExecutionCommand(userPath, bin)
package aapt
