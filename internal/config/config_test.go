package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/parkctl/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv makes the default kick in.
	t.Setenv("PARKING_API_URL", "x")
	os.Unsetenv("PARKING_API_URL")
	t.Setenv("LOG_LEVEL", "x")
	os.Unsetenv("LOG_LEVEL")
	t.Setenv("PARKCTL_DATA_DIR", "/tmp/parkctl-test")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "/tmp/parkctl-test", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PARKING_API_URL", "https://parking.example.com")
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_test_123")
	t.Setenv("PARKCTL_DATA_DIR", "/tmp/parkctl-test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://parking.example.com", cfg.BaseURL)
	assert.Equal(t, "pk_test_123", cfg.StripePublishableKey)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDataDirFallsBackToUserConfigDir(t *testing.T) {
	t.Setenv("PARKCTL_DATA_DIR", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Contains(t, cfg.DataDir, "parkctl")
}
