package aapt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/logging"
	"github.com/ZebulonRouseFrantzich/aaptkit/internal/platform"
)

// Materializer copies a bundled resource to an executable file on disk.
type Materializer interface {
	Materialize(resource string) (string, error)
}

// Config holds the collaborators of a Resolver.
type Config struct {
	// Detector reports the host platform
	Detector platform.Detector
	// Materializer extracts bundled binaries (normally a *bundle.Bundle)
	Materializer Materializer
	// Runner executes binaries; defaults to ExecRunner with DefaultProbeTimeout
	Runner Runner
	Logger logging.Logger
}

// Resolver finds, extracts and identifies aapt binaries.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	detector      platform.Detector
	materializer  Materializer
	runner        Runner
	logger        logging.Logger
	setExecutable func(path string) error
}

// NewResolver creates a new resolver
func NewResolver(config Config) (*Resolver, error) {
	if config.Detector == nil {
		return nil, fmt.Errorf("Detector is required")
	}

	if config.Materializer == nil {
		return nil, fmt.Errorf("Materializer is required")
	}

	logger := logging.OrNop(config.Logger)

	runner := config.Runner
	if runner == nil {
		runner = ExecRunner{Timeout: DefaultProbeTimeout, Logger: logger}
	}

	return &Resolver{
		detector:      config.Detector,
		materializer:  config.Materializer,
		runner:        runner,
		logger:        logger,
		setExecutable: SetExecutable,
	}, nil
}

// Aapt1 resolves the bundled aapt binary.
func (r *Resolver) Aapt1(ctx context.Context) (*Binary, error) {
	return r.Resolve(ctx, Version1)
}

// Aapt2 resolves the bundled aapt2 binary.
func (r *Resolver) Aapt2(ctx context.Context) (*Binary, error) {
	return r.Resolve(ctx, Version2)
}

// Resolve materializes the bundled binary for v on the current platform.
// The returned file is guaranteed to be executable.
func (r *Resolver) Resolve(ctx context.Context, v Version) (*Binary, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, int(v))
	}

	info, err := r.detector.Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("detect platform: %w", err)
	}

	resource, err := ResourcePath(v, info)
	if err != nil {
		return nil, err
	}

	path, err := r.materializer.Materialize(resource)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceExtraction, resource, err)
	}

	if err := r.setExecutable(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPermission, path, err)
	}

	r.logger.Debug("resolved bundled binary", "version", v, "platform", info.Label(), "resource", resource, "path", path)

	return &Binary{
		Path:     path,
		Resource: resource,
		Version:  v,
	}, nil
}

// ExecutionCommand returns the absolute path of the binary to invoke.
//
// A non-empty explicitPath overrides the bundle: it must name a readable
// file or ErrBinaryNotFound is returned, without falling back. It is made
// executable on a best-effort basis. Otherwise the path of fallback is
// returned.
func (r *Resolver) ExecutionCommand(explicitPath string, fallback *Binary) (string, error) {
	if explicitPath != "" {
		path := absPath(explicitPath)
		if err := checkReadable(path); err != nil {
			return "", fmt.Errorf("%w: binary could not be read: %s: %v", ErrBinaryNotFound, path, err)
		}

		if err := r.setExecutable(path); err != nil {
			r.logger.Debug("could not mark binary executable", "path", path, "error", err)
		}
		return path, nil
	}

	if fallback == nil || fallback.Path == "" {
		return "", fmt.Errorf("%w: no binary path given and no bundled binary resolved", ErrBinaryNotFound)
	}

	return absPath(fallback.Path), nil
}

// ProbeVersion runs "<path> version" and classifies the output.
func (r *Resolver) ProbeVersion(ctx context.Context, path string) (Version, error) {
	path = absPath(path)

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%w: could not identify aapt binary as executable: %s", ErrBinaryNotFound, path)
	}

	if err := r.setExecutable(path); err != nil {
		r.logger.Debug("could not mark binary executable", "path", path, "error", err)
	}

	output, ok := r.runner.Run(ctx, path, "version")
	if !ok {
		return 0, fmt.Errorf("%w at location: %s", ErrExecution, path)
	}

	v, err := ParseVersion(output)
	if err != nil {
		return 0, err
	}

	r.logger.Debug("probed binary version", "path", path, "version", v)
	return v, nil
}

// Locate resolves the binary a packaging step should invoke: the
// user-supplied opts.Path if set, otherwise the bundled binary for
// opts.Version.
func (r *Resolver) Locate(ctx context.Context, opts LocateOptions) (*Location, error) {
	var bundled *Binary
	if opts.Path == "" {
		b, err := r.Resolve(ctx, opts.Version)
		if err != nil {
			return nil, err
		}
		bundled = b
	}

	path, err := r.ExecutionCommand(opts.Path, bundled)
	if err != nil {
		return nil, err
	}

	loc := &Location{
		Path:    path,
		Version: opts.Version,
		Bundled: bundled != nil,
		Binary:  bundled,
	}

	if !opts.CheckVersion {
		return loc, nil
	}

	got, err := r.ProbeVersion(ctx, path)
	if err != nil {
		return nil, err
	}

	if opts.Version != 0 && got != opts.Version {
		return nil, fmt.Errorf("%w: %s reports %s, want %s", ErrVersionMismatch, path, got, opts.Version)
	}
	loc.Version = got

	return loc, nil
}

// absPath returns path made absolute, or path itself if that fails.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
