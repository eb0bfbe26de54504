package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults are invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
words:
  file: /usr/share/dict/words
display:
  color: never
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Words.File != "/usr/share/dict/words" {
		t.Errorf("Words.File = %q", cfg.Words.File)
	}
	if cfg.Display.Color != "never" {
		t.Errorf("Display.Color = %q, expected never", cfg.Display.Color)
	}
	// Unset sections keep their defaults
	if cfg.Log.Level != "warn" || !cfg.Storage.Enabled {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing custom file should fail")
	}

	bad := writeFile(t, dir, "bad.yaml", "display: [not, a, map]\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML should fail")
	}

}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	path := writeFile(t, t.TempDir(), "invalid.yaml", "display:\n  color: sometimes\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not validate: %v", err)
	}
	if cfg.Display.Color != "sometimes" {
		t.Errorf("Display.Color = %q, expected the file value", cfg.Display.Color)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject an unknown color mode")
	}

	cfg.Display.Color = "never"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate after override failed: %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load with no files = %+v, expected defaults", cfg)
	}

	// Local file is used when present
	writeFile(t, work, LocalPath, "log:\n  level: debug\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected debug from local file", cfg.Log.Level)
	}

	// User file wins over the local file
	writeFile(t, home, filepath.Join(".hangman", "config.yaml"), "log:\n  level: error\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, expected error from user file", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad color", func(c *Config) { c.Display.Color = "rainbow" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"storage without db", func(c *Config) { c.Storage.DB = "" }, true},
		{"storage disabled without db", func(c *Config) { c.Storage.Enabled = false; c.Storage.DB = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
