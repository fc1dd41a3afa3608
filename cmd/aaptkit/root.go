package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/aapt"
	"github.com/ZebulonRouseFrantzich/aaptkit/internal/bundle"
	"github.com/ZebulonRouseFrantzich/aaptkit/internal/config"
	"github.com/ZebulonRouseFrantzich/aaptkit/internal/logging"
	"github.com/ZebulonRouseFrantzich/aaptkit/internal/platform"
)

// annotationConfigOptional marks commands that run without an explicitly
// named config file existing.
const annotationConfigOptional = "aaptkit/config-optional"

// app carries the state shared by all subcommands.
type app struct {
	out    io.Writer
	errOut io.Writer

	// Global flags
	configPath string
	debug      bool

	// Loaded by the root command before any subcommand runs
	cfg     *config.Config // effective settings, environment applied
	fileCfg *config.Config // as read from disk
	logger  logging.Logger

	// Overridable in tests
	detector platform.Detector
	bundleFS fs.FS
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:      out,
		errOut:   errOut,
		detector: platform.NewDetector(),
		logger:   logging.Nop(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aaptkit",
		Short: "Locate and identify Android aapt/aapt2 binaries",
		Long: "aaptkit ships prebuilt aapt and aapt2 binaries, extracts the one matching\n" +
			"this machine, and identifies the version of any aapt binary.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/aaptkit/aaptkit.lua)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		a.resolveCmd(),
		a.probeCmd(),
		a.commandCmd(),
		a.platformCmd(),
		a.configCmd(),
		a.versionCmd(),
	)

	return root
}

// load reads the configuration and sets up logging.
func (a *app) load(cmd *cobra.Command) error {
	parser := config.NewParser(a.detector)
	fileCfg, err := config.LoadFile(cmd.Context(), parser, a.configPath)
	switch {
	case err == nil:
	case cmd.Annotations[annotationConfigOptional] == "true" && errors.Is(err, fs.ErrNotExist):
		fileCfg = config.Default()
	default:
		return err
	}

	cfg := *fileCfg
	config.ApplyEnv(&cfg)
	a.fileCfg = fileCfg
	a.cfg = &cfg

	level := cfg.Log.Level
	if a.debug {
		level = "debug"
	}
	a.logger = logging.New(a.errOut, level)

	if cfg.Source != "" {
		a.logger.Debug("loaded config", "path", cfg.Source)
	}
	return nil
}

// openBundle returns the embedded bundle, or bundleFS when set.
func (a *app) openBundle() (*bundle.Bundle, error) {
	opts := bundle.Options{
		TempDir: a.cfg.Bundle.TempDir,
		Strict:  a.cfg.Bundle.Strict,
		Logger:  a.logger,
	}
	if a.bundleFS != nil {
		return bundle.New(a.bundleFS, opts)
	}
	return bundle.Default(opts)
}

// newResolver wires the resolver from the loaded configuration.
func (a *app) newResolver() (*aapt.Resolver, *bundle.Bundle, error) {
	b, err := a.openBundle()
	if err != nil {
		return nil, nil, fmt.Errorf("open bundle: %w", err)
	}

	r, err := aapt.NewResolver(aapt.Config{
		Detector:     a.detector,
		Materializer: b,
		Runner:       aapt.ExecRunner{Timeout: a.cfg.Aapt.Timeout, Logger: a.logger},
		Logger:       a.logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return r, b, nil
}

// versionFlag returns the --aapt-version flag value if set, else the
// configured version.
func (a *app) versionFlag(cmd *cobra.Command, flagValue int) (aapt.Version, error) {
	n := a.cfg.Aapt.Version
	if cmd.Flags().Changed("aapt-version") {
		n = flagValue
	}
	return aapt.ParseVersionNumber(n)
}
