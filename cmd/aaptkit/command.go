package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/aapt"
	"github.com/ZebulonRouseFrantzich/aaptkit/internal/config"
)

func (a *app) commandCmd() *cobra.Command {
	var (
		version  int
		aaptPath string
		check    bool
	)

	cmd := &cobra.Command{
		Use:   "command",
		Short: "Print the aapt binary a build should invoke",
		Long: "Prints the absolute path of the binary to run. A user-supplied binary\n" +
			"(--aapt, $" + config.EnvAaptPath + ", or aapt.path in the config) takes\n" +
			"precedence over the bundle; if it cannot be read the command fails rather\n" +
			"than falling back.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := aapt.LocateOptions{
				Path:         a.cfg.Aapt.Path,
				CheckVersion: check || a.cfg.Aapt.CheckVersion,
			}
			if cmd.Flags().Changed("aapt") {
				opts.Path = aaptPath
			}

			v, err := a.versionFlag(cmd, version)
			if err != nil {
				return err
			}
			opts.Version = v

			r, _, err := a.newResolver()
			if err != nil {
				return err
			}

			loc, err := r.Locate(cmd.Context(), opts)
			if err != nil {
				return err
			}

			a.logger.Debug("located binary", "path", loc.Path, "bundled", loc.Bundled, "version", loc.Version)
			fmt.Fprintln(a.out, loc.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&aaptPath, "aapt", "", "user-supplied aapt binary; overrides the bundle")
	cmd.Flags().IntVar(&version, "aapt-version", 0, "aapt major version, 1 or 2 (default from config)")
	cmd.Flags().BoolVar(&check, "check", false, "probe the binary and require the expected version")
	return cmd
}
