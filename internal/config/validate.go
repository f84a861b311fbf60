package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	switch cfg.Output.Format {
	case FormatAuto, FormatJSON, FormatTable:
	default:
		return nil, fmt.Errorf("output.format must be one of: auto, json, table")
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be >= 0")
	}

	if path := strings.TrimSpace(cfg.SocketPath); path != "" && !filepath.IsAbs(path) {
		warnings = append(warnings, Warning{Message: fmt.Sprintf("socket_path %q is relative; it resolves against the working directory", path)})
	}

	return warnings, nil
}
