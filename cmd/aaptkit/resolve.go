package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func (a *app) resolveCmd() *cobra.Command {
	var version int

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Extract the bundled binary for this platform and print its path",
		Long: "Extracts the bundled aapt or aapt2 binary matching this machine to a new\n" +
			"executable file and prints its path. The caller owns the file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.versionFlag(cmd, version)
			if err != nil {
				return err
			}

			r, _, err := a.newResolver()
			if err != nil {
				return err
			}

			bin, err := r.Resolve(cmd.Context(), v)
			if err != nil {
				return err
			}

			if info, err := os.Stat(bin.Path); err == nil {
				a.logger.Info("extracted "+bin.Version.String(), "resource", bin.Resource, "size", humanize.Bytes(uint64(info.Size())))
			}

			fmt.Fprintln(a.out, bin.Path)
			return nil
		},
	}

	cmd.Flags().IntVar(&version, "aapt-version", 0, "aapt major version, 1 or 2 (default from config)")
	return cmd
}
