package config

import (
	_ "embed"
)

//go:embed defaults/hangman.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Words: WordsConfig{
			File: "",
		},
		Display: DisplayConfig{
			Color: "auto",
		},
		Storage: StorageConfig{
			Enabled: true,
			DB:      "~/.hangman/results.db",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
