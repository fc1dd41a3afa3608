package config

import (
	"context"
	"strings"
	"testing"
	"time"
)

func fixedGenerator() *Generator {
	g := NewGenerator()
	g.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerator_Generate_Default(t *testing.T) {
	got, err := fixedGenerator().Generate(Default())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := `-- aaptkit configuration
-- Generated: 2026-03-01T12:00:00Z
--
-- The read-only ` + "`platform`" + ` table is available, e.g.
--   path = platform.is_windows and "C:/sdk/aapt2.exe" or nil

aaptkit = {
  aapt = {
    version = 2,
    timeout = "30s",
    check_version = false,
  },
  bundle = {
    strict = false,
  },
  log = {
    level = "info",
  },
}
`
	if got != want {
		t.Errorf("Generate() =\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerator_RoundTrip(t *testing.T) {
	configs := []*Config{
		Default(),
		{
			Aapt: AaptConfig{
				Version:      1,
				Path:         `C:\Program Files\Android\aapt.exe`,
				Timeout:      90 * time.Second,
				CheckVersion: true,
			},
			Bundle: BundleConfig{Strict: true, TempDir: "/var/tmp/\"quoted\"\tdir"},
			Log:    LogConfig{Level: "debug"},
		},
	}

	for _, config := range configs {
		code, err := NewGenerator().Generate(config)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		parsed, err := NewParser(nil).ParseString(context.Background(), code)
		if err != nil {
			t.Fatalf("ParseString() error = %v\n%s", err, code)
		}

		if parsed.Aapt != config.Aapt {
			t.Errorf("Aapt = %+v, want %+v", parsed.Aapt, config.Aapt)
		}
		if parsed.Bundle != config.Bundle {
			t.Errorf("Bundle = %+v, want %+v", parsed.Bundle, config.Bundle)
		}
		if parsed.Log != config.Log {
			t.Errorf("Log = %+v, want %+v", parsed.Log, config.Log)
		}
	}
}

func TestGenerator_Generate_Invalid(t *testing.T) {
	if _, err := NewGenerator().Generate(nil); err == nil {
		t.Error("Generate(nil) expected error")
	}

	config := Default()
	config.Aapt.Version = 7
	if _, err := NewGenerator().Generate(config); err == nil {
		t.Error("Generate() expected validation error")
	}
}

func TestGenerator_QuoteLuaString(t *testing.T) {
	gen := NewGenerator()

	tests := []struct {
		input string
		want  string
	}{
		{"simple", `"simple"`},
		{`say "hi"`, `"say \"hi\""`},
		{`C:\sdk`, `"C:\\sdk"`},
		{"a\nb", `"a\nb"`},
		{"a\tb\r", `"a\tb\r"`},
	}

	for _, tt := range tests {
		if got := gen.quoteLuaString(tt.input); got != tt.want {
			t.Errorf("quoteLuaString(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestGenerator_OmitsEmptyOptionalFields(t *testing.T) {
	code, err := NewGenerator().Generate(Default())
	if err != nil {
		t.Fatal(err)
	}
	body := code[strings.Index(code, "aaptkit = {"):]
	for _, field := range []string{"path =", "temp_dir ="} {
		if strings.Contains(body, field) {
			t.Errorf("Generate() wrote %q for an empty value", field)
		}
	}
}
