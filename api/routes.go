package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/flowiq/ingest-api/api/health"
	apirecordings "github.com/flowiq/ingest-api/api/recordings"
	"github.com/flowiq/ingest-api/api/types"
	"github.com/flowiq/ingest-api/api/version"
	"github.com/flowiq/ingest-api/api/webhooks"
	_ "github.com/flowiq/ingest-api/docs/swagger"
	"github.com/flowiq/ingest-api/internal/services/ingestion"
	"github.com/flowiq/ingest-api/internal/services/recordings"
	"github.com/flowiq/ingest-api/internal/services/tenants"
	"github.com/flowiq/ingest-api/internal/services/transcription"
	"github.com/flowiq/ingest-api/pkg/config"
	"github.com/flowiq/ingest-api/pkg/fetch"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// The ingestion and read surfaces need the store; without it only the
	// public routes are served.
	if deps.DB != nil && deps.DB.DB != nil {
		initializeIngestionServices(deps, cfg)

		webhookGroup := v1.Group("/webhooks")
		if cfg.RateLimiting.Enabled {
			rps := endpointRate(cfg, "webhooks", 20)
			webhookGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, rps*2))
		}
		webhooks.RegisterRoutes(webhookGroup, deps)

		recordingGroup := v1.Group("/recordings")
		if cfg.RateLimiting.Enabled {
			rps := endpointRate(cfg, "recordings", 10)
			recordingGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, rps*2))
		}
		apirecordings.RegisterRoutes(recordingGroup, deps)
	}

	return nil
}

// initializeIngestionServices fills in any dependencies not injected by the
// caller (tests inject their own doubles)
func initializeIngestionServices(deps *types.Dependencies, cfg *config.Config) {
	if deps.TenantResolver == nil {
		deps.TenantResolver = tenants.NewPayloadResolver(tenants.NewRepository(deps.DB.DB))
	}

	if deps.RecordingService == nil {
		deps.RecordingService = recordings.NewService(recordings.NewRepository(deps.DB.DB))
	}

	if deps.Transcriber == nil {
		deps.Transcriber = transcription.NewClient(transcription.Config{
			BaseURL: cfg.Transcription.BaseURL,
			APIKey:  cfg.Transcription.APIKey,
			Timeout: cfg.Transcription.Timeout,
		})
	}

	if deps.Ingestion == nil {
		fetcher := fetch.NewFetcher(fetch.Options{
			MaxBytes:  cfg.Ingest.MaxAudioBytes,
			Timeout:   cfg.Ingest.FetchTimeout,
			UserAgent: cfg.Ingest.UserAgent,
		})
		deps.Ingestion = ingestion.NewService(deps.TenantResolver, deps.RecordingService, deps.Transcriber, fetcher)
	}
}

// endpointRate looks up a configured per-endpoint rate with a fallback
func endpointRate(cfg *config.Config, endpoint string, fallback int) int {
	if rps, ok := cfg.RateLimiting.Endpoints[endpoint]; ok && rps > 0 {
		return rps
	}
	return fallback
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success": false,
			"error":   "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
