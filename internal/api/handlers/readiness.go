package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vtiwari/recovery-insights/internal/services"
	"github.com/vtiwari/recovery-insights/pkg/utils"
)

type ReadinessHandler struct {
	analysis         *services.AnalysisService
	defaultThreshold float64
}

func NewReadinessHandler(analysis *services.AnalysisService, defaultThreshold float64) *ReadinessHandler {
	return &ReadinessHandler{analysis: analysis, defaultThreshold: defaultThreshold}
}

// GetReadiness returns the composite readiness score for one player,
// component breakdown included.
func (h *ReadinessHandler) GetReadiness(c *gin.Context) {
	threshold, ok := thresholdParam(c, h.defaultThreshold)
	if !ok {
		return
	}
	score, err := h.analysis.Readiness(c.Param("name"), threshold)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}
	utils.SendSuccess(c, score)
}

// ListReadiness ranks every player by readiness score.
func (h *ReadinessHandler) ListReadiness(c *gin.Context) {
	threshold, ok := thresholdParam(c, h.defaultThreshold)
	if !ok {
		return
	}
	scores, err := h.analysis.AllReadiness(threshold)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}
	utils.SendSuccessWithMeta(c, scores, &utils.Meta{Total: int64(len(scores))})
}
