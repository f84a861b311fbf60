package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Parse decodes TOML content over base and validates the result.
//
// Unknown keys are reported as warnings rather than errors so that a config
// written for a newer release still loads.
func Parse(content string, base Config) (Config, []Warning, error) {
	var file fileConfig
	warnings := make([]Warning, 0)

	dec := toml.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		var strict *toml.StrictMissingError
		if !errors.As(err, &strict) {
			return Config{}, nil, describeDecodeError(err)
		}
		for _, missing := range strict.Errors {
			row, _ := missing.Position()
			warnings = append(warnings, Warning{
				Line:    row,
				Message: fmt.Sprintf("unknown key %q ignored", strings.Join(missing.Key(), ".")),
			})
		}

		file = fileConfig{}
		if err := toml.Unmarshal([]byte(content), &file); err != nil {
			return Config{}, nil, describeDecodeError(err)
		}
	}

	cfg, err := apply(file, base)
	if err != nil {
		return Config{}, nil, err
	}

	validated, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, append(warnings, validated...), nil
}

// apply overlays the keys present in file onto base.
func apply(file fileConfig, base Config) (Config, error) {
	cfg := base

	if file.SocketPath != nil {
		cfg.SocketPath = strings.TrimSpace(*file.SocketPath)
	}
	if file.Timeout != nil {
		raw := strings.TrimSpace(*file.Timeout)
		if raw == "" {
			cfg.Timeout = 0
		} else {
			timeout, err := time.ParseDuration(raw)
			if err != nil {
				return Config{}, fmt.Errorf("timeout: %w", err)
			}
			cfg.Timeout = timeout
		}
	}
	if file.Output.Format != nil {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(*file.Output.Format))
	}
	if file.Log.Enable != nil {
		cfg.Log.Enable = *file.Log.Enable
	}
	if file.Log.Level != nil {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(*file.Log.Level))
	}

	return cfg, nil
}

func describeDecodeError(err error) error {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Errorf("line %d column %d: %w", row, col, err)
	}
	return err
}
