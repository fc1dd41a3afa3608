package aapt

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/logging"
)

// DefaultProbeTimeout bounds a single "aapt version" invocation.
const DefaultProbeTimeout = 30 * time.Second

// Runner executes a binary and captures its standard output.
// The boolean is false when the process could not be started, timed out,
// or printed nothing.
type Runner interface {
	Run(ctx context.Context, path string, args ...string) (string, bool)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	// Timeout bounds each run; zero means no limit beyond ctx.
	Timeout time.Duration
	Logger  logging.Logger
}

// Run executes path with args. A non-zero exit status still yields the
// captured output, since some aapt builds exit non-zero after printing
// their banner.
func (r ExecRunner) Run(ctx context.Context, path string, args ...string) (string, bool) {
	logger := logging.OrNop(r.Logger)

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if ctx.Err() != nil || !errors.As(err, &exitErr) {
			logger.Debug("run failed", "path", path, "args", args, "error", err)
			return "", false
		}
		logger.Debug("non-zero exit", "path", path, "args", args, "code", exitErr.ExitCode(),
			"stderr", strings.TrimSpace(stderr.String()))
	}

	out := stdout.String()
	if strings.TrimSpace(out) == "" {
		logger.Debug("no output", "path", path, "args", args)
		return "", false
	}

	return out, true
}
