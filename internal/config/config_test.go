package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
	}
	if cfg.LockTarget {
		t.Error("LockTarget = true, want false")
	}
	if cfg.LockTimeout != 5*time.Second {
		t.Errorf("LockTimeout = %v, want 5s", cfg.LockTimeout)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatText)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `log_level: DEBUG
color: never
found_words: [ja, oui]
lock_target: true
lock_timeout: 250ms
format: yaml
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
	if len(cfg.FoundWords) != 2 || cfg.FoundWords[0] != "ja" {
		t.Errorf("FoundWords = %v, want [ja oui]", cfg.FoundWords)
	}
	if !cfg.LockTarget {
		t.Error("LockTarget = false, want true")
	}
	if cfg.LockTimeout != 250*time.Millisecond {
		t.Errorf("LockTimeout = %v, want 250ms", cfg.LockTimeout)
	}
	if cfg.Format != FormatYAML {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatYAML)
	}
}

// TestLoadConfigPartialFile verifies unset keys keep their defaults
func TestLoadConfigPartialFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("lock_target: false\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.Format != FormatText || len(cfg.FoundWords) != 6 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

// TestLoadConfigMissingFile tests that a missing file yields defaults
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

// TestLoadConfigFromDir tests lookup of .missfind.yaml
func TestLoadConfigFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("format: yaml\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.Format != FormatYAML {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatYAML)
	}
}

// TestLoadConfigErrors tests malformed files
func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "log_level: [unclosed\n"},
		{name: "invalid duration", content: "lock_timeout: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if _, err := LoadConfig(configPath); err == nil {
				t.Error("LoadConfig() error = nil, want error")
			}
		})
	}
}

// TestMergeWithFlags verifies flags override file values
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()

	color := "NEVER"
	lock := true
	format := "yaml"
	cfg.MergeWithFlags(&color, &lock, &format)

	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
	if !cfg.LockTarget {
		t.Error("LockTarget = false, want true")
	}
	if cfg.Format != FormatYAML {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatYAML)
	}

	cfg.MergeWithFlags(nil, nil, nil)
	if cfg.Color != ColorNever || !cfg.LockTarget || cfg.Format != FormatYAML {
		t.Error("nil flags must not change values")
	}
}

// TestValidate tests invalid configuration values
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "bad color", mutate: func(c *Config) { c.Color = "rainbow" }},
		{name: "bad format", mutate: func(c *Config) { c.Format = "xml" }},
		{name: "negative lock timeout", mutate: func(c *Config) { c.LockTimeout = -time.Second }},
		{name: "empty found word", mutate: func(c *Config) { c.FoundWords = []string{"yes", " "} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() error = nil, want error")
			}
		})
	}
}

// TestIsFoundWord tests the found/missing toggle spellings
func TestIsFoundWord(t *testing.T) {
	cfg := DefaultConfig()

	for _, word := range []string{"true", "YES", "Y", "1", "Found", " show "} {
		if !cfg.IsFoundWord(word) {
			t.Errorf("IsFoundWord(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"", "no", "false", "0", "missing", "yess"} {
		if cfg.IsFoundWord(word) {
			t.Errorf("IsFoundWord(%q) = true, want false", word)
		}
	}
}
