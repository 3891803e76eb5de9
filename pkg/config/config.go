// Package config loads the actionlens client configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	apperrors "github.com/actionlens/actionlens/pkg/errors"
)

// ClientConfig is the flat actionlens configuration. Every field has a
// usable default, so running with no config file at all is supported.
type ClientConfig struct {
	// GitHubAPIURL is the base URL of the GitHub REST API
	GitHubAPIURL string `yaml:"github_api_url"`
	// GitHubToken is an optional bearer token for private repositories
	GitHubToken string `yaml:"github_token"`
	// DefaultRepo is an optional owner/name used when --repo is omitted
	DefaultRepo string `yaml:"default_repo"`
	// MermaidBinary is the external renderer invoked for SVG output
	MermaidBinary string `yaml:"mermaid_binary"`
	// LogLevel controls diagnostic verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultClientConfig holds the built-in defaults applied before any
// config file or environment override.
var DefaultClientConfig = ClientConfig{
	GitHubAPIURL:  "https://api.github.com",
	MermaidBinary: "mmdc",
	LogLevel:      "warn",
}

// LoadClientConfig loads configuration from the specified file.
//
//  1. Path passed via --config
//  2. Path from ACTIONLENS_CONFIG environment variable
//  3. ./actionlens-config.yml
//  4. ./config/actionlens-config.yml
//  5. ~/.actionlens/actionlens-config.yml
//  6. /etc/actionlens/actionlens-config.yml
//
// A missing file is not an error: defaults apply, with the GITHUB_TOKEN
// environment variable overriding the configured token either way.
func LoadClientConfig(configPath string) (*ClientConfig, error) {
	config := DefaultClientConfig

	if configPath == "" {
		configPath = findClientConfig()
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, apperrors.WrapConfigError("", fmt.Errorf("configuration file not found: %s", configPath))
		}

		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, apperrors.WrapConfigError("", fmt.Errorf("failed to read config file %s: %w", configPath, err))
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, apperrors.WrapConfigError("", fmt.Errorf("failed to parse config file %s: %w", configPath, err))
		}
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		config.GitHubToken = token
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration for values the rest of the program
// assumes: a non-empty API base URL, a renderer binary name, and a known
// logging level.
func (c *ClientConfig) Validate() error {
	if c.GitHubAPIURL == "" {
		return apperrors.WrapConfigError("github_api_url", fmt.Errorf("must not be empty"))
	}

	if c.MermaidBinary == "" {
		return apperrors.WrapConfigError("mermaid_binary", fmt.Errorf("must not be empty"))
	}

	validLevels := map[string]bool{
		"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true,
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.LogLevel] {
		return apperrors.WrapConfigError("log_level", fmt.Errorf("invalid log level: %s", c.LogLevel))
	}

	return nil
}

// findClientConfig searches for the configuration file in standard
// locations. Returns empty string if none exists, which callers treat as
// "run on defaults".
func findClientConfig() string {
	if envPath := os.Getenv("ACTIONLENS_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	locations := []string{
		"./actionlens-config.yml",
		"./config/actionlens-config.yml",
		filepath.Join(os.Getenv("HOME"), ".actionlens", "actionlens-config.yml"),
		"/etc/actionlens/actionlens-config.yml",
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
