// Package config parses aaptkit's optional Lua configuration file.
//
// # Overview
//
// Settings live in aaptkit.lua, a plain Lua 5.1 script that assigns a
// global aaptkit table:
//
//	aaptkit = {
//	  aapt = {
//	    version = 2,
//	    path = platform.is_windows and "C:/sdk/build-tools/aapt2.exe" or nil,
//	    timeout = 30,
//	    check_version = true,
//	  },
//	  bundle = { strict = true },
//	  log = { level = "debug" },
//	}
//
// The script runs in gopher-lua with a read-only platform table injected
// (see platform.InjectPlatformTable), so one file can serve several hosts.
//
// # Security Model
//
// User Lua code runs in a restricted sandbox that removes:
//   - System command execution (os.execute, os.exit, etc.)
//   - Filesystem access (io.open, io.popen, etc.)
//   - External code loading (require, dofile, loadfile, etc.)
//   - The debug library
//
// string, table and math stay available. Parsing honours context
// cancellation, and files larger than MaxConfigSize are rejected before
// the VM sees them.
//
// # Lookup
//
// Find resolves the file to load: an explicit path first, then
// $AAPTKIT_CONFIG, then $XDG_CONFIG_HOME/aaptkit/aaptkit.lua (falling back
// to ~/.config). A missing default file is not an error; Default() applies.
//
// # Error Handling
//
// Lua errors and invalid values are returned as *ParseError, whose
// Message is meant for users and whose Detail carries the raw Lua error.
// FormatError trims the stack traceback unless verbose output is wanted.
package config
