package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the aaptkit configuration file",
	}
	cmd.AddCommand(a.configInitCmd(), a.configPathCmd())
	return cmd
}

func (a *app) configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the current file settings",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			annotationConfigOptional: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _, err := config.Find(a.configPath)
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists: %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("check config: %w", err)
			}

			// Environment overrides stay out of the saved file
			code, err := config.NewGenerator().Generate(a.fileCfg)
			if err != nil {
				return fmt.Errorf("generate config: %w", err)
			}

			if err := config.WriteFile(path, code); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func (a *app) configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file aaptkit reads",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			annotationConfigOptional: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _, err := config.Find(a.configPath)
			if err != nil {
				return err
			}

			status := "not found, using defaults"
			if a.cfg.Source != "" {
				status = "loaded"
			}
			fmt.Fprintf(a.out, "%s (%s)\n", path, status)
			return nil
		},
	}
}
