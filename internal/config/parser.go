package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/platform"
)

// Parser represents a Lua config parser with platform detection.
type Parser struct {
	detector platform.Detector
}

// NewParser creates a new config parser with the given platform detector.
// A nil detector leaves the platform table undefined.
func NewParser(detector platform.Detector) *Parser {
	return &Parser{detector: detector}
}

// ParseFile reads and parses the config at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if info.Size() > MaxConfigSize {
		return nil, &ParseError{
			Message: "config file too large",
			Detail:  fmt.Sprintf("%s is %d bytes, maximum is %d", path, info.Size(), MaxConfigSize),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config, err := p.ParseString(ctx, string(data))
	if err != nil {
		return nil, err
	}
	config.Source = path
	return config, nil
}

// ParseString parses a Lua config from a string.
// Fields the script leaves unset keep their Default() values.
func (p *Parser) ParseString(ctx context.Context, luaCode string) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	L := newSandboxedVM()
	defer L.Close()
	L.SetContext(ctx)

	// Detect platform and inject platform table
	if p.detector != nil {
		platformInfo, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, platformInfo); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &ParseError{
			Message: "Lua syntax error",
			Detail:  err.Error(),
		}
	}

	return extractConfig(L)
}

// ParseError represents a config parsing error with friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw Lua error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// extractConfig extracts the config from a Lua state.
// It expects a global "aaptkit" table with the config structure.
func extractConfig(L *lua.LState) (*Config, error) {
	global := L.GetGlobal(luaGlobalAaptkit)
	if global.Type() != lua.LTTable {
		return nil, &ParseError{
			Message: "missing or invalid 'aaptkit' table",
			Detail:  fmt.Sprintf("expected table, got %s", global.Type()),
		}
	}

	config := Default()
	table := global.(*lua.LTable)

	if aaptVal := table.RawGetString(luaFieldAapt); aaptVal != lua.LNil {
		aaptTable, err := asTable(luaFieldAapt, aaptVal)
		if err != nil {
			return nil, err
		}
		if err := extractAapt(aaptTable, &config.Aapt); err != nil {
			return nil, err
		}
	}

	if bundleVal := table.RawGetString(luaFieldBundle); bundleVal != lua.LNil {
		bundleTable, err := asTable(luaFieldBundle, bundleVal)
		if err != nil {
			return nil, err
		}
		if err := extractBundle(bundleTable, &config.Bundle); err != nil {
			return nil, err
		}
	}

	if logVal := table.RawGetString(luaFieldLog); logVal != lua.LNil {
		logTable, err := asTable(luaFieldLog, logVal)
		if err != nil {
			return nil, err
		}
		if err := extractLog(logTable, &config.Log); err != nil {
			return nil, err
		}
	}

	// Validate the extracted config
	if err := config.Validate(); err != nil {
		return nil, &ParseError{
			Message: "config validation failed",
			Detail:  err.Error(),
		}
	}

	return config, nil
}

// extractAapt extracts the aapt section from a Lua table.
func extractAapt(table *lua.LTable, aapt *AaptConfig) error {
	if v := table.RawGetString(luaFieldVersion); v != lua.LNil {
		n, ok := v.(lua.LNumber)
		if !ok || float64(n) != float64(int(n)) {
			return fieldError("aapt.version", "integer", v)
		}
		aapt.Version = int(n)
	}

	if v := table.RawGetString(luaFieldPath); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			return fieldError("aapt.path", "string", v)
		}
		aapt.Path = strings.TrimSpace(string(s))
	}

	if v := table.RawGetString(luaFieldTimeout); v != lua.LNil {
		timeout, err := parseTimeout(v)
		if err != nil {
			return err
		}
		aapt.Timeout = timeout
	}

	if v := table.RawGetString(luaFieldCheckVersion); v != lua.LNil {
		b, ok := v.(lua.LBool)
		if !ok {
			return fieldError("aapt.check_version", "boolean", v)
		}
		aapt.CheckVersion = bool(b)
	}

	return nil
}

// extractBundle extracts the bundle section from a Lua table.
func extractBundle(table *lua.LTable, bundle *BundleConfig) error {
	if v := table.RawGetString(luaFieldStrict); v != lua.LNil {
		b, ok := v.(lua.LBool)
		if !ok {
			return fieldError("bundle.strict", "boolean", v)
		}
		bundle.Strict = bool(b)
	}

	if v := table.RawGetString(luaFieldTempDir); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			return fieldError("bundle.temp_dir", "string", v)
		}
		bundle.TempDir = string(s)
	}

	return nil
}

// extractLog extracts the log section from a Lua table.
func extractLog(table *lua.LTable, log *LogConfig) error {
	if v := table.RawGetString(luaFieldLevel); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			return fieldError("log.level", "string", v)
		}
		log.Level = strings.ToLower(string(s))
	}
	return nil
}

// parseTimeout accepts a number of seconds or a Go duration string ("1m30s").
func parseTimeout(v lua.LValue) (time.Duration, error) {
	switch tv := v.(type) {
	case lua.LNumber:
		return time.Duration(float64(tv) * float64(time.Second)), nil
	case lua.LString:
		d, err := time.ParseDuration(string(tv))
		if err != nil {
			return 0, &ParseError{
				Message: "invalid value for aapt.timeout",
				Detail:  err.Error(),
			}
		}
		return d, nil
	default:
		return 0, fieldError("aapt.timeout", "number or duration string", v)
	}
}

func asTable(field string, v lua.LValue) (*lua.LTable, error) {
	t, ok := v.(*lua.LTable)
	if !ok {
		return nil, fieldError(field, "table", v)
	}
	return t, nil
}

func fieldError(field, want string, got lua.LValue) error {
	return &ParseError{
		Message: "invalid value for " + field,
		Detail:  fmt.Sprintf("expected %s, got %s", want, got.Type()),
	}
}

// FormatError formats a ParseError for user display.
// In verbose mode, show the raw Lua error. Otherwise, show friendly message.
func FormatError(err error, verbose bool) string {
	if parseErr, ok := err.(*ParseError); ok {
		if verbose {
			return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
		}
		// Extract the most relevant part of the error
		detail := parseErr.Detail
		if idx := strings.Index(detail, "stack traceback"); idx > 0 {
			detail = strings.TrimSpace(detail[:idx])
		}
		return fmt.Sprintf("%s: %s", parseErr.Message, detail)
	}
	return err.Error()
}
