package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the configuration file looked up in the working directory
const ConfigFileName = ".missfind.yaml"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Report formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config represents missfind configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color controls coloured output (auto, always, never)
	Color string `yaml:"color"`

	// FoundWords are the spellings of the third positional argument that
	// select listing found terms instead of missing ones (case-insensitive)
	FoundWords []string `yaml:"found_words"`

	// LockTarget takes a shared advisory lock on the target file while reading it
	LockTarget bool `yaml:"lock_target"`

	// LockTimeout is how long to wait for the target file lock
	LockTimeout time.Duration `yaml:"lock_timeout"`

	// Format selects the report format (text, yaml)
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "warn",
		Color:       ColorAuto,
		FoundWords:  []string{"true", "yes", "y", "1", "found", "show"},
		LockTarget:  false,
		LockTimeout: 5 * time.Second,
		Format:      FormatText,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are strings in YAML, pointers distinguish unset from false
	type yamlConfig struct {
		LogLevel    string   `yaml:"log_level"`
		Color       string   `yaml:"color"`
		FoundWords  []string `yaml:"found_words"`
		LockTarget  *bool    `yaml:"lock_target"`
		LockTimeout string   `yaml:"lock_timeout"`
		Format      string   `yaml:"format"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(yamlCfg.LogLevel)
	}
	if yamlCfg.Color != "" {
		cfg.Color = strings.ToLower(yamlCfg.Color)
	}
	if len(yamlCfg.FoundWords) > 0 {
		cfg.FoundWords = yamlCfg.FoundWords
	}
	if yamlCfg.LockTarget != nil {
		cfg.LockTarget = *yamlCfg.LockTarget
	}
	if yamlCfg.LockTimeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.LockTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid lock_timeout format %q: %w", yamlCfg.LockTimeout, err)
		}
		cfg.LockTimeout = timeout
	}
	if yamlCfg.Format != "" {
		cfg.Format = strings.ToLower(yamlCfg.Format)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .missfind.yaml in the specified directory
// If the file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ConfigFileName))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(color *string, lockTarget *bool, format *string) {
	if color != nil {
		c.Color = strings.ToLower(*color)
	}
	if lockTarget != nil {
		c.LockTarget = *lockTarget
	}
	if format != nil {
		c.Format = strings.ToLower(*format)
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q, must be one of: text, yaml", c.Format)
	}

	if c.LockTimeout < 0 {
		return fmt.Errorf("lock_timeout must be >= 0, got %v", c.LockTimeout)
	}

	for _, word := range c.FoundWords {
		if strings.TrimSpace(word) == "" {
			return fmt.Errorf("found_words cannot contain empty entries")
		}
	}

	return nil
}

// IsFoundWord reports whether token selects listing found terms
func (c *Config) IsFoundWord(token string) bool {
	token = strings.TrimSpace(token)
	for _, word := range c.FoundWords {
		if strings.EqualFold(token, strings.TrimSpace(word)) {
			return true
		}
	}
	return false
}
