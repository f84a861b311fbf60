package config

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	return Config{
		SocketPath: "",
		Timeout:    0,
		Output:     OutputConfig{Format: FormatAuto},
		Log: LogConfig{
			Enable: true,
			Level:  "info",
		},
	}
}
