// Package config resolves, parses, validates, and defaults yabaictl configuration.
package config

import "time"

// Config is the fully materialized runtime configuration used by yabaictl.
type Config struct {
	// SocketPath overrides the conventional /tmp/yabai_$USER.socket when set.
	SocketPath string
	// Timeout bounds each daemon exchange; zero means no limit.
	Timeout time.Duration
	Output  OutputConfig
	Log     LogConfig
}

// OutputConfig controls how query results are printed.
type OutputConfig struct {
	Format string
}

// LogConfig controls the JSONL command log.
type LogConfig struct {
	Enable bool
	Level  string
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}

// Output formats accepted by output.format.
const (
	FormatAuto  = "auto"
	FormatJSON  = "json"
	FormatTable = "table"
)

// fileConfig mirrors the TOML document; pointers distinguish unset keys from zero values.
type fileConfig struct {
	SocketPath *string `toml:"socket_path"`
	Timeout    *string `toml:"timeout"`
	Output     struct {
		Format *string `toml:"format"`
	} `toml:"output"`
	Log struct {
		Enable *bool   `toml:"enable"`
		Level  *string `toml:"level"`
	} `toml:"log"`
}
