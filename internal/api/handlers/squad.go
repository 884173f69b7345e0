package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vtiwari/recovery-insights/internal/models"
	"github.com/vtiwari/recovery-insights/internal/services"
	"github.com/vtiwari/recovery-insights/pkg/utils"
)

type SquadHandler struct {
	analysis            *services.AnalysisService
	defaultThreshold    float64
	defaultRequirements models.PositionRequirements
}

func NewSquadHandler(analysis *services.AnalysisService, defaultThreshold float64, defaultRequirements models.PositionRequirements) *SquadHandler {
	return &SquadHandler{
		analysis:            analysis,
		defaultThreshold:    defaultThreshold,
		defaultRequirements: defaultRequirements,
	}
}

type squadRequest struct {
	RiskThreshold *float64       `json:"risk_threshold"`
	Requirements  map[string]int `json:"requirements"`
}

// SelectSquad assembles the starting XI, bench and unavailable lists
// under the position-requirement table. Positions short of candidates
// surface in the response's shortfall list, never as an error.
func (h *SquadHandler) SelectSquad(c *gin.Context) {
	var req squadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.SendValidationError(c, "Invalid request body", err.Error())
			return
		}
	}

	threshold := h.defaultThreshold
	if req.RiskThreshold != nil {
		threshold = *req.RiskThreshold
	}

	requirements := h.defaultRequirements
	if len(req.Requirements) > 0 {
		requirements = make(models.PositionRequirements, len(req.Requirements))
		for raw, count := range req.Requirements {
			pos, err := models.ParsePosition(raw)
			if err != nil {
				utils.SendValidationError(c, "Invalid position requirements", err.Error())
				return
			}
			requirements[pos] = count
		}
		if err := requirements.Validate(); err != nil {
			utils.SendValidationError(c, "Invalid position requirements", err.Error())
			return
		}
	}

	assignment, cached, err := h.analysis.SelectSquad(c.Request.Context(), threshold, requirements)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}
	if cached {
		c.Header("X-Cache", "hit")
	}
	if assignment.HasShortfall() {
		utils.SendSuccessWithMeta(c, assignment, &utils.Meta{
			Warning: "one or more positions could not be filled to quota",
		})
		return
	}
	utils.SendSuccess(c, assignment)
}
