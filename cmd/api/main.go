// ABOUTME: Main entry point for the tax research API server
// ABOUTME: Wires configuration, cache backend, adapters and services, then serves HTTP

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taxresearch-api/api"
	"taxresearch-api/api/handlers"
	"taxresearch-api/core/content"
	"taxresearch-api/core/domain"
	"taxresearch-api/core/interfaces"
	"taxresearch-api/core/relevance"
	"taxresearch-api/core/research"
	"taxresearch-api/core/sources"
	"taxresearch-api/infrastructure/cache/memory"
	"taxresearch-api/infrastructure/cache/redis"
	"taxresearch-api/infrastructure/cache/sqlite"
	stdhttp "taxresearch-api/infrastructure/http/standard"
	logruslogger "taxresearch-api/infrastructure/logger/logrus"
	"taxresearch-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("starting tax research API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"cache_ttl_h": cfg.Research.CacheTTLHours,
	})

	cache := buildCache(cfg, logger)

	adapterTimeout := time.Duration(cfg.Research.AdapterTimeoutSeconds) * time.Second
	httpClient := stdhttp.NewClient(adapterTimeout)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Registration order fixes tie-breaking in the final ranking:
	// curated sources first, the generic fallback last.
	adapters := []interfaces.SourceAdapter{
		sources.NewReferenceAdapter(httpClient),
		sources.NewDejureAdapter(httpClient),
		sources.NewBuzerAdapter(httpClient),
		sources.NewHaufeAdapter(adapterTimeout, logger),
		sources.NewFinanztipAdapter(httpClient),
		sources.NewVLHAdapter(httpClient),
		sources.NewNewsFeedAdapter(httpClient, cfg.Research.NewsFeedURL),
		sources.NewDuckDuckGoAdapter(httpClient),
	}

	researchService := research.NewService(
		deps,
		adapters,
		relevance.NewDefaultScorer(),
		domain.DefaultTrustTable(),
		content.NewFetcher(httpClient, logger),
		research.Config{
			CacheTTL:       time.Duration(cfg.Research.CacheTTLHours) * time.Hour,
			AdapterTimeout: adapterTimeout,
		},
	)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  100,
		RateWindow: time.Minute,
	})

	handlers.NewResearchHandler(researchService).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Block until interrupted, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// buildCache selects the cache backend, falling back to memory when a
// backend cannot be constructed.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	cleanup := time.Duration(cfg.Cache.Memory.CleanupIntervalSeconds) * time.Second
	ttl := time.Duration(cfg.Research.CacheTTLHours) * time.Hour

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewClient(cfg.Cache.Redis)
		if err != nil {
			logger.Error("failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewClient(ttl, cleanup)
		}
		logger.Info("using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewClient(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewClient(ttl, cleanup)
		}
		logger.Info("using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("using memory cache", nil)
		return memory.NewClient(ttl, cleanup)
	}
}
