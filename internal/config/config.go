// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Bank   string `json:"bank,omitempty"`   // Path to question bank JSON file

	// Company research
	Company      string   `json:"company,omitempty"`       // Target company name
	ResearchURLs []string `json:"research_urls,omitempty"` // Seed URLs for company research

	// Generation
	QuestionCount int `json:"question_count,omitempty"` // Number of questions to generate

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	StorageDir  string `json:"storage_dir,omitempty"`  // Local artifact directory
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.QuestionCount < 0 {
		return fmt.Errorf("config error: 'question_count' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Bank != "" {
		if _, err := os.Stat(c.Bank); os.IsNotExist(err) {
			return fmt.Errorf("config error: bank file not found: %s", c.Bank)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Bank == "" {
		result.Bank = defaults.Bank
	}
	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.StorageDir == "" {
		result.StorageDir = defaults.StorageDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if len(result.ResearchURLs) == 0 {
		result.ResearchURLs = defaults.ResearchURLs
	}

	// Int fields: use default if zero
	if result.QuestionCount == 0 {
		result.QuestionCount = defaults.QuestionCount
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
