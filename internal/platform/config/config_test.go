package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 5*time.Second, cfg.CategorizeTimeout)
	assert.Equal(t, 2*time.Hour, cfg.DraftTTL)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Len(t, cfg.CORSAllowedOrigins, 2)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "TEXT")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://books.example.com ,, ")
	t.Setenv("DRAFT_TTL", "30m")
	t.Setenv("CATEGORIZE_TIMEOUT", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, []string{"https://books.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.DraftTTL)
	assert.Equal(t, 5*time.Second, cfg.CategorizeTimeout, "invalid durations fall back")
}

func TestParseLevel_Invalid(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, parseLevel("loud"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
}
