package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/vtiwari/recovery-insights/internal/api"
	"github.com/vtiwari/recovery-insights/internal/assessment"
	"github.com/vtiwari/recovery-insights/internal/services"
	"github.com/vtiwari/recovery-insights/internal/synthetic"
	"github.com/vtiwari/recovery-insights/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger := logrus.StandardLogger()
	setupLogging(cfg, logger)

	// Redis is optional: no URL means the result cache no-ops and
	// every selection recomputes.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("Redis unreachable, continuing without result cache: %v", err)
		}
		defer redisClient.Close()
	}

	cacheService := services.NewCacheService(redisClient, logger)
	datasetService := services.NewDatasetService(synthetic.DefaultRoster(), cfg.SyntheticPlayers, cfg.SyntheticDays, logger)

	scorer := assessment.NewScorer(assessment.Weights{
		Latest:      cfg.ScoreWeightLatest,
		RecentAvg:   cfg.ScoreWeightRecentAvg,
		Trend:       cfg.ScoreWeightTrend,
		Variability: cfg.ScoreWeightVariability,
		RiskDays:    cfg.ScoreWeightRiskDays,
	}, cfg.ScoreVariabilityScale)

	analysisService := services.NewAnalysisService(datasetService, scorer, cacheService, cfg.CacheTTL, logger)

	// Initial load: configured export if present, synthetic otherwise.
	if _, err := datasetService.LoadFromFile(cfg.DataFile); err != nil {
		logger.Fatalf("Failed to load dataset: %v", err)
	}

	router, err := api.NewRouter(cfg, logger, datasetService, analysisService)
	if err != nil {
		logger.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

func setupLogging(cfg *config.Config, logger *logrus.Logger) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}
}
