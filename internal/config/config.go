// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "RESUME_PARSER_"

// Config represents the CLI configuration. Values come from a JSON file,
// then RESUME_PARSER_* environment variables, then CLI flags.
// All fields are optional; missing values use defaults.
type Config struct {
	// Tables
	Vocabulary string `json:"vocabulary,omitempty" env:"VOCABULARY"` // Path to a YAML vocabulary

	// Limits
	HeadingMaxLen int `json:"heading_max_len,omitempty" env:"HEADING_MAX_LEN" validate:"gte=0,lte=500"` // Heading length threshold in runes
	SkillLimit    int `json:"skill_limit,omitempty" env:"SKILL_LIMIT" validate:"gte=0,lte=1000"`        // Maximum skills reported
	Workers       int `json:"workers,omitempty" env:"WORKERS" validate:"gte=0,lte=64"`                  // Concurrent parses for batch input

	// Behavior
	LogLevel       string `json:"log_level,omitempty" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	LogFormat      string `json:"log_format,omitempty" env:"LOG_FORMAT" validate:"omitempty,oneof=text json"`
	Verbose        bool   `json:"verbose,omitempty" env:"VERBOSE"`                 // Print boxed summaries
	ValidateOutput bool   `json:"validate_output,omitempty" env:"VALIDATE_OUTPUT"` // Schema-check every parse result
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		HeadingMaxLen: 50,
		SkillLimit:    15,
		Workers:       4,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays RESUME_PARSER_* environment variables. Unset variables
// leave the current value alone.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	if result.HeadingMaxLen == 0 {
		result.HeadingMaxLen = defaults.HeadingMaxLen
	}
	if result.SkillLimit == 0 {
		result.SkillLimit = defaults.SkillLimit
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Load reads the optional config file, overlays the environment, fills
// defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
