package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "https://api.mistral.ai/v1", cfg.MistralBaseURL)
	assert.Equal(t, "mistral-small-latest", cfg.MistralModel)
	assert.Equal(t, 30*time.Second, cfg.MistralTimeout)
	assert.Equal(t, 1000, cfg.CacheMaxSize)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 100, cfg.RateLimitPerHour)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MISTRAL_TIMEOUT_SECONDS", "10")
	t.Setenv("CACHE_MAX_SIZE", "50")
	t.Setenv("RATE_LIMIT_PER_HOUR", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 10*time.Second, cfg.MistralTimeout)
	assert.Equal(t, 50, cfg.CacheMaxSize)
	// Unparseable values keep the default.
	assert.Equal(t, 100, cfg.RateLimitPerHour)
}
