// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/talent-scorer/internal/types"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvWorkers     = "TALENT_SCORER_WORKERS"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	JobSpec string `json:"job_spec,omitempty" yaml:"job_spec"` // Default job spec file for score/estimate

	// Storage
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url"` // PostgreSQL connection URL

	// Scoring
	Workers            int `json:"workers,omitempty" yaml:"workers"`                         // Batch worker pool size
	ShortlistThreshold int `json:"shortlist_threshold,omitempty" yaml:"shortlist_threshold"` // Minimum total for shortlisted
	ReviewThreshold    int `json:"review_threshold,omitempty" yaml:"review_threshold"`       // Minimum total for review

	// Behavior
	LogJSON bool `json:"log_json,omitempty" yaml:"log_json"` // Emit JSON logs instead of console logs
	Debug   bool `json:"debug,omitempty" yaml:"debug"`       // Enable debug logging
	Verbose bool `json:"verbose,omitempty" yaml:"verbose"`   // Print detailed breakdowns
}

// Defaults returns the built-in configuration
func Defaults() Config {
	th := types.DefaultThresholds()
	return Config{
		Workers:            4,
		ShortlistThreshold: th.Shortlist,
		ReviewThreshold:    th.Review,
	}
}

// LoadConfig loads configuration from a JSON file, or a YAML file when the extension is .yaml or .yml.
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.ReviewThreshold < 0 || c.ReviewThreshold > 100 {
		return fmt.Errorf("config error: 'review_threshold' must be between 0 and 100")
	}
	if c.ShortlistThreshold < 0 || c.ShortlistThreshold > 100 {
		return fmt.Errorf("config error: 'shortlist_threshold' must be between 0 and 100")
	}
	if c.ShortlistThreshold != 0 && c.ReviewThreshold > c.ShortlistThreshold {
		return fmt.Errorf("config error: 'review_threshold' must not exceed 'shortlist_threshold'")
	}

	if c.JobSpec != "" {
		if _, err := os.Stat(c.JobSpec); os.IsNotExist(err) {
			return fmt.Errorf("config error: job spec file not found: %s", c.JobSpec)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JobSpec == "" {
		result.JobSpec = defaults.JobSpec
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.ShortlistThreshold == 0 {
		result.ShortlistThreshold = defaults.ShortlistThreshold
	}
	if result.ReviewThreshold == 0 {
		result.ReviewThreshold = defaults.ReviewThreshold
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from the environment. Invalid numbers are reported, not ignored.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvDatabaseURL)); v != "" {
		c.DatabaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		c.Workers = n
	}
	return nil
}

// Thresholds returns the status cutoffs, falling back to the defaults for unset values
func (c *Config) Thresholds() types.Thresholds {
	th := types.DefaultThresholds()
	if c.ShortlistThreshold > 0 {
		th.Shortlist = c.ShortlistThreshold
	}
	if c.ReviewThreshold > 0 {
		th.Review = c.ReviewThreshold
	}
	return th
}
