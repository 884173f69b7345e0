// Package handlers exposes the analysis core over gin, one handler
// struct per resource, all responding with the pkg/utils envelope.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vtiwari/recovery-insights/internal/services"
)

type HealthHandler struct {
	datasets *services.DatasetService
}

func NewHealthHandler(datasets *services.DatasetService) *HealthHandler {
	return &HealthHandler{datasets: datasets}
}

// GetHealth is the liveness probe: 200 whenever the server runs, with
// the active dataset version when one is loaded.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	payload := gin.H{
		"status":    "ok",
		"service":   "recovery-insights",
		"timestamp": time.Now().UTC(),
	}
	if ds := h.datasets.Current(); ds != nil {
		payload["dataset_version"] = ds.Version
		payload["dataset_source"] = string(ds.Source)
	}
	c.JSON(http.StatusOK, payload)
}
