package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/actionlens/actionlens/pkg/errors"
)

func TestLoadClientConfig_Defaults(t *testing.T) {
	t.Setenv("ACTIONLENS_CONFIG", "")
	t.Setenv("GITHUB_TOKEN", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadClientConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.github.com", cfg.GitHubAPIURL)
	assert.Equal(t, "mmdc", cfg.MermaidBinary)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.GitHubToken)
}

func TestLoadClientConfig_FromFile(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "actionlens-config.yml")
	content := `
github_api_url: "https://github.internal.example.com/api/v3"
github_token: "file-token"
default_repo: "acme/pipelines"
log_level: "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadClientConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://github.internal.example.com/api/v3", cfg.GitHubAPIURL)
	assert.Equal(t, "file-token", cfg.GitHubToken)
	assert.Equal(t, "acme/pipelines", cfg.DefaultRepo)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unset fields keep their defaults
	assert.Equal(t, "mmdc", cfg.MermaidBinary)
}

func TestLoadClientConfig_EnvTokenOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "actionlens-config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`github_token: "file-token"`), 0o600))

	t.Setenv("GITHUB_TOKEN", "env-token")

	cfg, err := LoadClientConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.GitHubToken)
}

func TestLoadClientConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadClientConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *ClientConfig) {}, false},
		{"empty api url", func(c *ClientConfig) { c.GitHubAPIURL = "" }, true},
		{"empty renderer", func(c *ClientConfig) { c.MermaidBinary = "" }, true},
		{"bad log level", func(c *ClientConfig) { c.LogLevel = "loud" }, true},
		{"uppercase log level", func(c *ClientConfig) { c.LogLevel = "DEBUG" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultClientConfig
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
