// Package api wires the handlers onto the gin engine.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/vtiwari/recovery-insights/internal/api/handlers"
	"github.com/vtiwari/recovery-insights/internal/api/middleware"
	"github.com/vtiwari/recovery-insights/internal/models"
	"github.com/vtiwari/recovery-insights/internal/services"
	"github.com/vtiwari/recovery-insights/pkg/config"
)

// NewRouter builds the full engine: middleware stack, health and
// metrics endpoints, and the /api/v1 analysis routes.
func NewRouter(cfg *config.Config, logger *logrus.Logger, datasets *services.DatasetService, analysis *services.AnalysisService) (*gin.Engine, error) {
	requirements, err := models.ParseRequirements(cfg.Formation)
	if err != nil {
		return nil, err
	}
	defaultWindow, err := models.ParseWindow(cfg.DefaultWindow())
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.CorsOrigins))

	healthHandler := handlers.NewHealthHandler(datasets)
	datasetHandler := handlers.NewDatasetHandler(datasets)
	playerHandler := handlers.NewPlayerHandler(datasets, analysis, cfg.RiskThreshold, defaultWindow, cfg.RollingWindow)
	analysisHandler := handlers.NewAnalysisHandler(analysis, cfg.RiskThreshold)
	readinessHandler := handlers.NewReadinessHandler(analysis, cfg.RiskThreshold)
	squadHandler := handlers.NewSquadHandler(analysis, cfg.RiskThreshold, requirements)

	router.GET("/health", healthHandler.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := router.Group("/api/v1")

	apiV1.GET("/dataset", datasetHandler.GetDataset)
	apiV1.POST("/dataset", middleware.UploadRateLimit(cfg.UploadRateLimit), datasetHandler.Upload)
	apiV1.POST("/dataset/synthetic", datasetHandler.GenerateSynthetic)

	apiV1.GET("/players", playerHandler.ListPlayers)
	apiV1.GET("/players/:name/stats", playerHandler.GetStats)
	apiV1.GET("/players/:name/rolling", playerHandler.GetRolling)
	apiV1.GET("/players/:name/weekly", playerHandler.GetWeekly)
	apiV1.GET("/players/:name/workload", analysisHandler.GetWorkload)
	apiV1.GET("/players/:name/assessment", analysisHandler.GetAssessment)
	apiV1.GET("/players/:name/readiness", readinessHandler.GetReadiness)

	apiV1.GET("/readiness", readinessHandler.ListReadiness)
	apiV1.POST("/squad/selection", squadHandler.SelectSquad)

	return router, nil
}
