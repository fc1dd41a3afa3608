package config

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Generator generates Lua configuration code from Go structs.
type Generator struct {
	indent string // Indentation string (default: two spaces)
	now    func() time.Time
}

// NewGenerator creates a new Lua config generator.
func NewGenerator() *Generator {
	return &Generator{
		indent: "  ", // Two spaces
		now:    time.Now,
	}
}

// Generate generates Lua code from a Config struct.
// Parsing the output with ParseString yields an equal Config.
func (g *Generator) Generate(config *Config) (string, error) {
	if config == nil {
		return "", fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer

	buf.WriteString("-- aaptkit configuration\n")
	buf.WriteString("-- Generated: ")
	buf.WriteString(g.now().Format(time.RFC3339))
	buf.WriteString("\n--\n")
	buf.WriteString("-- The read-only `platform` table is available, e.g.\n")
	buf.WriteString("--   path = platform.is_windows and \"C:/sdk/aapt2.exe\" or nil\n\n")

	buf.WriteString(luaGlobalAaptkit)
	buf.WriteString(" = {\n")
	g.writeAapt(&buf, config.Aapt)
	g.writeBundle(&buf, config.Bundle)
	g.writeLog(&buf, config.Log)
	buf.WriteString("}\n")

	return buf.String(), nil
}

// writeAapt writes the aapt section to the buffer.
func (g *Generator) writeAapt(buf *bytes.Buffer, aapt AaptConfig) {
	g.open(buf, luaFieldAapt)
	g.field(buf, luaFieldVersion, strconv.Itoa(aapt.Version))
	if aapt.Path != "" {
		g.field(buf, luaFieldPath, g.quoteLuaString(aapt.Path))
	}
	g.field(buf, luaFieldTimeout, g.quoteLuaString(aapt.Timeout.String()))
	g.field(buf, luaFieldCheckVersion, strconv.FormatBool(aapt.CheckVersion))
	g.close(buf)
}

// writeBundle writes the bundle section to the buffer.
func (g *Generator) writeBundle(buf *bytes.Buffer, bundle BundleConfig) {
	g.open(buf, luaFieldBundle)
	g.field(buf, luaFieldStrict, strconv.FormatBool(bundle.Strict))
	if bundle.TempDir != "" {
		g.field(buf, luaFieldTempDir, g.quoteLuaString(bundle.TempDir))
	}
	g.close(buf)
}

// writeLog writes the log section to the buffer.
func (g *Generator) writeLog(buf *bytes.Buffer, log LogConfig) {
	level := log.Level
	if level == "" {
		level = DefaultLogLevel
	}
	g.open(buf, luaFieldLog)
	g.field(buf, luaFieldLevel, g.quoteLuaString(level))
	g.close(buf)
}

func (g *Generator) open(buf *bytes.Buffer, name string) {
	buf.WriteString(g.indent)
	buf.WriteString(name)
	buf.WriteString(" = {\n")
}

func (g *Generator) field(buf *bytes.Buffer, name, value string) {
	buf.WriteString(g.indent)
	buf.WriteString(g.indent)
	buf.WriteString(name)
	buf.WriteString(" = ")
	buf.WriteString(value)
	buf.WriteString(",\n")
}

func (g *Generator) close(buf *bytes.Buffer) {
	buf.WriteString(g.indent)
	buf.WriteString("},\n")
}

// quoteLuaString quotes a string for Lua, handling special characters.
func (g *Generator) quoteLuaString(s string) string {
	// Use double quotes and escape special characters
	s = strings.ReplaceAll(s, "\\", "\\\\") // Escape backslashes first
	s = strings.ReplaceAll(s, "\"", "\\\"") // Escape double quotes
	s = strings.ReplaceAll(s, "\n", "\\n")  // Escape newlines
	s = strings.ReplaceAll(s, "\r", "\\r")  // Escape carriage returns
	s = strings.ReplaceAll(s, "\t", "\\t")  // Escape tabs
	return "\"" + s + "\""
}
