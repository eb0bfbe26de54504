// Package config provides YAML-based configuration loading for hangman.
package config

import (
	"fmt"
)

// Config contains all user-tunable settings.
type Config struct {
	Words   WordsConfig   `yaml:"words"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// WordsConfig selects the word corpus.
type WordsConfig struct {
	File string `yaml:"file"` // Empty uses the embedded list
}

// DisplayConfig controls board output.
type DisplayConfig struct {
	Color string `yaml:"color"` // "auto", "always" or "never"
}

// StorageConfig controls the results database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DB      string `yaml:"db"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}

var (
	colorModes = map[string]bool{"auto": true, "always": true, "never": true}
	logLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if !colorModes[c.Display.Color] {
		return fmt.Errorf("config: unknown color mode %q (want auto, always or never)", c.Display.Color)
	}
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("config: unknown log level %q (want debug, info, warn or error)", c.Log.Level)
	}
	if c.Storage.Enabled && c.Storage.DB == "" {
		return fmt.Errorf("config: storage is enabled but storage.db is empty")
	}
	return nil
}
