package config

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestSandboxLuaVM(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
		errMsg  string
	}{
		// Operations config scripts legitimately use
		{name: "string library", code: `x = string.format("%s/%s", "a", string.lower("B"))`},
		{name: "table library", code: `t = {"a"}; table.insert(t, "b"); x = table.concat(t, ",")`},
		{name: "math library", code: `x = math.max(10, math.floor(29.7))`},
		{name: "basic functions", code: `x = tostring(tonumber("30")) .. type({})`},
		{name: "pairs", code: `for k, v in pairs({a = 1}) do end`},

		// Everything reaching outside the VM
		{name: "os.execute", code: `os.execute("ls")`, wantErr: true, errMsg: "attempt to index"},
		{name: "os.getenv", code: `x = os.getenv("ANDROID_HOME")`, wantErr: true, errMsg: "attempt to index"},
		{name: "io.open", code: `f = io.open("/etc/passwd")`, wantErr: true, errMsg: "attempt to index"},
		{name: "io.popen", code: `f = io.popen("which aapt2")`, wantErr: true, errMsg: "attempt to index"},
		{name: "require", code: `x = require("socket")`, wantErr: true, errMsg: "attempt to call"},
		{name: "module", code: `module("evil")`, wantErr: true, errMsg: "attempt to call"},
		{name: "dofile", code: `dofile("/tmp/evil.lua")`, wantErr: true, errMsg: "attempt to call"},
		{name: "loadfile", code: `f = loadfile("/tmp/evil.lua")`, wantErr: true, errMsg: "attempt to call"},
		{name: "load", code: `f = load("return 1")`, wantErr: true, errMsg: "attempt to call"},
		{name: "loadstring", code: `f = loadstring("return 1")`, wantErr: true, errMsg: "attempt to call"},
		{name: "debug", code: `debug.getinfo(1)`, wantErr: true, errMsg: "attempt to index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			L := newSandboxedVM()
			defer L.Close()

			err := L.DoString(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DoString(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("DoString(%q) error = %v, want substring %q", tt.code, err, tt.errMsg)
			}
		})
	}
}

func TestNewSandboxedVM(t *testing.T) {
	L := newSandboxedVM()
	defer L.Close()

	for _, name := range sandboxedGlobals {
		if v := L.GetGlobal(name); v.Type() != lua.LTNil {
			t.Errorf("global %s = %v, want nil", name, v.Type())
		}
	}

	for _, name := range []string{"string", "table", "math"} {
		if v := L.GetGlobal(name); v.Type() != lua.LTTable {
			t.Errorf("global %s = %v, want table", name, v.Type())
		}
	}
}
