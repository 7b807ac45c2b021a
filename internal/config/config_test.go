package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouterBaseURL)
	assert.Equal(t, 10, cfg.ChatRatePerMin)
	assert.Equal(t, "chromium", cfg.ChromiumPath)
	assert.Equal(t, 30*time.Second, cfg.ServerShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("CHAT_RATE_PER_MIN", "3")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.False(t, cfg.IsDev())
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 3, cfg.ChatRatePerMin)
}

func TestEnvPredicates(t *testing.T) {
	assert.True(t, Config{AppEnv: "DEV"}.IsDev())
	assert.True(t, Config{AppEnv: "Test"}.IsTest())
	assert.True(t, Config{AppEnv: "prod"}.IsProd())
}

func TestCatalogBackoff_TestEnvShortens(t *testing.T) {
	cfg := Config{
		AppEnv:                   "test",
		CatalogBackoffMaxElapsed: time.Hour,
	}
	maxElapsed, initial, maxInterval, mult := cfg.CatalogBackoff()
	assert.Equal(t, 2*time.Second, maxElapsed)
	assert.Equal(t, 50*time.Millisecond, initial)
	assert.Equal(t, 500*time.Millisecond, maxInterval)
	assert.Equal(t, 2.0, mult)
}
