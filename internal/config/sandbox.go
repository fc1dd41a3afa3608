package config

import (
	lua "github.com/yuin/gopher-lua"
)

// sandboxedGlobals are removed from every config VM. Config scripts only
// describe settings; they never need the host system.
var sandboxedGlobals = []string{
	"os",         // os.execute, os.exit, os.getenv
	"io",         // io.open, io.popen
	"require",    // module loading
	"module",     //
	"dofile",     //
	"loadfile",   //
	"load",       //
	"loadstring", //
	"debug",      // could be used to bypass the sandbox
}

// sandboxLuaVM strips everything from L that reaches outside the VM.
// string, table, math and the basic functions stay available.
func sandboxLuaVM(L *lua.LState) {
	for _, name := range sandboxedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
}

// newSandboxedVM creates a new Lua VM with sandboxing applied.
func newSandboxedVM() *lua.LState {
	L := lua.NewState()
	sandboxLuaVM(L)
	return L
}
