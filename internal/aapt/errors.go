package aapt

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrResourceExtraction  = errors.New("could not extract bundled binary")
	ErrPermission          = errors.New("cannot set aapt binary as executable")
	ErrBinaryNotFound      = errors.New("aapt binary not found")
	ErrExecution           = errors.New("could not execute aapt binary")
	ErrUnrecognizedVersion = errors.New("aapt version could not be identified")
	ErrInvalidVersion      = errors.New("invalid aapt version")
	ErrVersionMismatch     = errors.New("aapt version mismatch")
)

// VersionOutputError reports version output that matches no known banner.
type VersionOutputError struct {
	// Output is the captured text, unmodified.
	Output string
}

// Error includes the captured output for diagnosis.
func (e *VersionOutputError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnrecognizedVersion, strings.TrimSpace(e.Output))
}

// Unwrap returns ErrUnrecognizedVersion so callers can use errors.Is.
func (e *VersionOutputError) Unwrap() error {
	return ErrUnrecognizedVersion
}
