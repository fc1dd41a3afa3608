package config

// Lua schema field names and globals
const (
	luaGlobalAaptkit     = "aaptkit"
	luaFieldAapt         = "aapt"
	luaFieldBundle       = "bundle"
	luaFieldLog          = "log"
	luaFieldVersion      = "version"
	luaFieldPath         = "path"
	luaFieldTimeout      = "timeout"
	luaFieldCheckVersion = "check_version"
	luaFieldStrict       = "strict"
	luaFieldTempDir      = "temp_dir"
	luaFieldLevel        = "level"
)

// Environment variables
const (
	EnvConfig   = "AAPTKIT_CONFIG"
	EnvAaptPath = "AAPTKIT_AAPT_PATH"
)

// FileName is the name of the configuration file.
const FileName = "aaptkit.lua"

// MaxConfigSize is the largest configuration file ParseFile accepts.
const MaxConfigSize = 1 << 20
