package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billscan/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, 10, cfg.Fetcher.TimeoutSecs)

	assert.Equal(t, "", cfg.Parser.APIKey)
	assert.Equal(t, "gemini-2.5-flash-preview-09-2025", cfg.Parser.DefaultModel)
	assert.Equal(t, 3, cfg.Parser.MaxRetries)
	assert.Equal(t, 120, cfg.Parser.TimeoutSecs)

	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BILLSCAN_SERVER_PORT", ":9090")
	t.Setenv("BILLSCAN_PARSER_API_KEY", "secret-key")
	t.Setenv("BILLSCAN_PARSER_DEFAULT_MODEL", "gemini-2.0-flash")
	t.Setenv("BILLSCAN_PARSER_MAX_RETRIES", "5")
	t.Setenv("BILLSCAN_FETCHER_TIMEOUT_SECS", "20")
	t.Setenv("BILLSCAN_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "secret-key", cfg.Parser.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Parser.DefaultModel)
	assert.Equal(t, 5, cfg.Parser.MaxRetries)
	assert.Equal(t, 20, cfg.Fetcher.TimeoutSecs)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "10000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":10000", cfg.Server.Port)
}

func TestLoad_ExplicitPortBeatsPlatformPort(t *testing.T) {
	t.Setenv("PORT", "10000")
	t.Setenv("BILLSCAN_SERVER_PORT", ":9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
}
