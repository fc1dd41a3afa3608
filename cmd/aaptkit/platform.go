package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/aapt"
	"github.com/ZebulonRouseFrantzich/aaptkit/internal/bundle"
	"github.com/ZebulonRouseFrantzich/aaptkit/internal/platform"
)

func (a *app) platformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Show the detected platform and the bundled binaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.detector.Detect(cmd.Context())
			if err != nil {
				return fmt.Errorf("detect platform: %w", err)
			}

			b, err := a.openBundle()
			if err != nil {
				return fmt.Errorf("open bundle: %w", err)
			}

			printPlatform(a.out, info)
			fmt.Fprintln(a.out)
			return printBundle(a.out, info, b)
		},
	}
}

func printPlatform(w io.Writer, info *platform.Info) {
	fmt.Fprintln(w, "Platform:")
	fmt.Fprintf(w, "  os:    %s (%s)\n", info.OS, info.Class())
	fmt.Fprintf(w, "  arch:  %s", info.Architecture())
	if info.ArchRaw != "" && info.ArchRaw != info.Architecture() {
		fmt.Fprintf(w, " (process %s)", info.ArchRaw)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  machine: %s\n", info.MachineName())
	fmt.Fprintf(w, "  bits:  %d\n", bitsOf(info))
	if distro := info.GetDistro(); distro != nil {
		fmt.Fprintf(w, "  distro: %s %s (%s)\n", distro.ID, distro.Version, distro.Family)
	}
}

func bitsOf(info *platform.Info) int {
	if info.Is64Bit() {
		return 64
	}
	return 32
}

func printBundle(w io.Writer, info *platform.Info, b *bundle.Bundle) error {
	fmt.Fprintln(w, "Selected binaries:")
	for _, v := range []aapt.Version{aapt.Version1, aapt.Version2} {
		resource, err := aapt.ResourcePath(v, info)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  %-6s unavailable: %v\n", v, err)
		case !b.Has(resource):
			fmt.Fprintf(w, "  %-6s %s (not bundled)\n", v, resource)
		default:
			fmt.Fprintf(w, "  %-6s %s\n", v, resource)
		}
	}

	resources, err := b.Resources()
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	if len(resources) == 0 {
		fmt.Fprintln(w, "The bundle contains no binaries.")
		return nil
	}

	fmt.Fprintln(w, "Bundled binaries:")
	for _, resource := range resources {
		size, err := b.Size(resource)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-24s %8s%s\n", resource, humanize.Bytes(uint64(size)), integrityNote(b, resource))
	}
	return nil
}

// integrityNote describes the manifest checks applied to resource.
func integrityNote(b *bundle.Bundle, resource string) string {
	entry, ok := b.Manifest().Resources[resource]
	if !ok {
		return ""
	}
	var checks []string
	if entry.SHA256 != "" {
		checks = append(checks, "sha256")
	}
	if entry.Signature != "" {
		checks = append(checks, "signed")
	}
	return "  [" + strings.Join(checks, ", ") + "]"
}
