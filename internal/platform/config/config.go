package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level
	LogFormat    string // "json" or "text"
	SeedDemoData bool

	CORSAllowedOrigins []string
	RateLimit          string // limiter formatted rate, e.g. "100-M"
	RateLimitRedisURL  string // empty keeps limiter counters in memory

	GeminiAPIKey      string
	GeminiModel       string
	GeminiEndpoint    string // empty uses the public endpoint
	CategorizeTimeout time.Duration

	DraftTTL time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("RATE_LIMIT_REDIS_URL", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_ENDPOINT", "")
	v.SetDefault("CATEGORIZE_TIMEOUT", "5s")
	v.SetDefault("DRAFT_TTL", "2h")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.SeedDemoData = v.GetBool("SEED_DEMO_DATA")

	cfg.LogLevel = parseLevel(v.GetString("LOG_LEVEL"))
	cfg.LogFormat = strings.ToLower(v.GetString("LOG_FORMAT"))
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to json.\n", cfg.LogFormat)
		cfg.LogFormat = "json"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.RateLimitRedisURL = v.GetString("RATE_LIMIT_REDIS_URL")

	cfg.GeminiAPIKey = v.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Category suggestions will always be \"Other\".")
	}
	cfg.GeminiModel = v.GetString("GEMINI_MODEL")
	cfg.GeminiEndpoint = v.GetString("GEMINI_ENDPOINT")

	cfg.CategorizeTimeout = parseDuration("CATEGORIZE_TIMEOUT", v.GetString("CATEGORIZE_TIMEOUT"), 5*time.Second)
	cfg.DraftTTL = parseDuration("DRAFT_TTL", v.GetString("DRAFT_TTL"), 2*time.Hour)

	return cfg, nil
}

func parseDuration(key, raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		return fallback
	}
	return d
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", raw)
		return slog.LevelInfo
	}
	return level
}
