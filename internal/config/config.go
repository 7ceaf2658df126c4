// Package config loads and validates the optional aliendict configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up in the working
// directory when no --config flag is given.
const DefaultFileName = ".aliendict.yaml"

// Default configuration values.
const (
	DefaultMaxWords      = 10000
	DefaultMaxWordLength = 1024
	DefaultColor         = "auto"
)

// Config is the root configuration.
type Config struct {
	Limits *LimitsConfig `yaml:"limits"`
	Output *OutputConfig `yaml:"output"`
}

// LimitsConfig bounds the accepted input size. A zero value disables the
// corresponding bound.
type LimitsConfig struct {
	MaxWords      int `yaml:"max_words"`
	MaxWordLength int `yaml:"max_word_length"`
}

// OutputConfig controls console rendering.
type OutputConfig struct {
	Color string `yaml:"color"` // auto, always, never
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadAndValidate reads a config file, applies defaults, validates, and
// returns warnings for non-fatal issues.
func LoadAndValidate(path string) (*Config, []string, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)

	warnings, err := Validate(cfg)
	if err != nil {
		return nil, warnings, err
	}

	return cfg, warnings, nil
}

// applyDefaults fills in default values for unset configuration sections.
// Explicit zero limits inside a present limits section mean "unbounded" and
// are left alone.
func applyDefaults(cfg *Config) {
	if cfg.Limits == nil {
		cfg.Limits = &LimitsConfig{
			MaxWords:      DefaultMaxWords,
			MaxWordLength: DefaultMaxWordLength,
		}
	}
	if cfg.Output == nil {
		cfg.Output = &OutputConfig{}
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = DefaultColor
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for
// non-fatal issues.
func Validate(cfg *Config) (warnings []string, err error) {
	if cfg.Limits.MaxWords < 0 {
		return nil, &ValidationError{Field: "limits.max_words", Message: "must not be negative"}
	}
	if cfg.Limits.MaxWordLength < 0 {
		return nil, &ValidationError{Field: "limits.max_word_length", Message: "must not be negative"}
	}

	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return nil, &ValidationError{
			Field:   "output.color",
			Message: fmt.Sprintf("invalid value %q (valid: auto, always, never)", cfg.Output.Color),
		}
	}

	if cfg.Limits.MaxWords == 0 {
		warnings = append(warnings, "limits.max_words is 0: word count is unbounded")
	}
	if cfg.Limits.MaxWordLength == 0 {
		warnings = append(warnings, "limits.max_word_length is 0: word length is unbounded")
	}

	return warnings, nil
}
