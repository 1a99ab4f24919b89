package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.ServiceURL)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, "rustenberg-go", cfg.UserAgent)
	assert.Empty(t, cfg.Level)
	assert.False(t, cfg.Development)
}

func TestLoadRequiresServiceURL(t *testing.T) {
	t.Setenv("RUSTENBERG_SERVICE_URL", "")
	require.NoError(t, os.Unsetenv("RUSTENBERG_SERVICE_URL"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVICE_URL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RUSTENBERG_SERVICE_URL", "http://localhost:8000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.ServiceURL)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Empty(t, cfg.Level)
	assert.False(t, cfg.Development)
}

func TestLoadWithEnvVars(t *testing.T) {
	t.Setenv("RUSTENBERG_SERVICE_URL", "https://pdf.internal/")
	t.Setenv("RUSTENBERG_TIMEOUT", "45s")
	t.Setenv("RUSTENBERG_USER_AGENT", "billing-worker")
	t.Setenv("RUSTENBERG_LOG_LEVEL", "debug")
	t.Setenv("RUSTENBERG_LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://pdf.internal/", cfg.ServiceURL)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, "billing-worker", cfg.UserAgent)
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.Development)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("RUSTENBERG_SERVICE_URL", "http://localhost:8000")
	t.Setenv("RUSTENBERG_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
