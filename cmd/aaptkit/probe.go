package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <path>",
		Short: "Identify the version of an aapt binary",
		Long: "Runs \"<path> version\" and prints aapt or aapt2 depending on the banner.\n" +
			"Fails when the file is missing, cannot run, or prints something else.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := a.newResolver()
			if err != nil {
				return err
			}

			v, err := r.ProbeVersion(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, v)
			return nil
		},
	}
}
