package config

import (
	"errors"
	"fmt"
	"os"
)

// Loaded is a resolved yabaictl config together with where it came from.
type Loaded struct {
	Path     string
	Config   Config
	Warnings []Warning
	Exists   bool
}

// Load reads the yabaictl config from explicitPath or the XDG location.
// A missing file is not an error: defaults apply and a warning says so.
func Load(explicitPath string) (Loaded, error) {
	path, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}
	loaded := Loaded{Path: path, Config: Default()}

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		loaded.Warnings = []Warning{{
			Message: fmt.Sprintf("no yabaictl config at %q; using built-in defaults", path),
		}}
		return loaded, nil
	case err != nil:
		return Loaded{}, fmt.Errorf("read yabaictl config %q: %w", path, err)
	}

	loaded.Config, loaded.Warnings, err = Parse(string(content), loaded.Config)
	if err != nil {
		return Loaded{}, fmt.Errorf("parse yabaictl config %q: %w", path, err)
	}
	loaded.Exists = true
	return loaded, nil
}
