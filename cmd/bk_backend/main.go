package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/adapters/gemini"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/core/services"
	"github.com/SscSPs/bookkeeping_console/internal/handlers"
	"github.com/SscSPs/bookkeeping_console/internal/middleware"
	"github.com/SscSPs/bookkeeping_console/internal/platform/config"
	"github.com/SscSPs/bookkeeping_console/internal/repositories/memory"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
)

const (
	shutdownTimeout = 30 * time.Second
	purgeInterval   = 10 * time.Minute
)

// @title Bookkeeping Console API
// @version 1.0
// @description Double-entry bookkeeping backend: ledger accounts, journals, drafts and financial reports.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := memory.NewStore()
	if cfg.SeedDemoData {
		if err := store.SeedDemoData(ctx); err != nil {
			logger.Error("Failed to seed demo data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Demo data loaded.")
	}

	var categorizer portssvc.Categorizer
	if cfg.GeminiAPIKey != "" {
		gc, err := gemini.NewCategorizer(ctx, gemini.Config{
			APIKey:   cfg.GeminiAPIKey,
			Model:    cfg.GeminiModel,
			Endpoint: cfg.GeminiEndpoint,
		})
		if err != nil {
			logger.Error("Failed to create Gemini categorizer", slog.String("error", err.Error()))
			os.Exit(1)
		}
		categorizer = gc
		logger.Info("Gemini categorizer enabled", slog.String("model", cfg.GeminiModel))
	} else {
		logger.Warn("GEMINI_API_KEY not set, transactions without a category will be filed under Other")
	}

	container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(store), categorizer)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rateLimiter, redisClient, err := newRateLimiter(cfg)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	r.Use(middleware.RateLimit(rateLimiter))

	handlers.RegisterRoutes(r, cfg, container)

	go purgeDrafts(ctx, logger, container.Draft)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// newRateLimiter shares counters through Redis when RATE_LIMIT_REDIS_URL is set.
func newRateLimiter(cfg *config.Config) (*limiter.Limiter, *redis.Client, error) {
	var client *redis.Client
	if cfg.RateLimitRedisURL != "" {
		opts, err := redis.ParseURL(cfg.RateLimitRedisURL)
		if err != nil {
			return nil, nil, err
		}
		client = redis.NewClient(opts)
	}
	l, err := middleware.NewRateLimiter(cfg.RateLimit, client)
	if err != nil {
		if client != nil {
			_ = client.Close()
		}
		return nil, nil, err
	}
	return l, client, nil
}

func purgeDrafts(ctx context.Context, logger *slog.Logger, drafts portssvc.JournalDraftSvc) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := drafts.PurgeExpired(ctx, now.UTC()); n > 0 {
				logger.Info("Purged expired journal drafts", slog.Int("count", n))
			}
		}
	}
}
