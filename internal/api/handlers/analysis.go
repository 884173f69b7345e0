package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vtiwari/recovery-insights/internal/services"
	"github.com/vtiwari/recovery-insights/pkg/utils"
)

type AnalysisHandler struct {
	analysis         *services.AnalysisService
	defaultThreshold float64
}

func NewAnalysisHandler(analysis *services.AnalysisService, defaultThreshold float64) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, defaultThreshold: defaultThreshold}
}

// GetAssessment returns the classifier's status, recommendation set and
// insights for one player's trailing week.
func (h *AnalysisHandler) GetAssessment(c *gin.Context) {
	threshold, ok := thresholdParam(c, h.defaultThreshold)
	if !ok {
		return
	}
	result, err := h.analysis.Assessment(c.Param("name"), threshold)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}
	utils.SendSuccess(c, result)
}

// GetWorkload returns acute:chronic workload progression with guidance.
func (h *AnalysisHandler) GetWorkload(c *gin.Context) {
	advice, err := h.analysis.Workload(c.Param("name"))
	if err != nil {
		sendAnalysisError(c, err)
		return
	}
	utils.SendSuccess(c, advice)
}
