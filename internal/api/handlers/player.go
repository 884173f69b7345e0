package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vtiwari/recovery-insights/internal/models"
	"github.com/vtiwari/recovery-insights/internal/services"
	"github.com/vtiwari/recovery-insights/pkg/utils"
)

type PlayerHandler struct {
	datasets *services.DatasetService
	analysis *services.AnalysisService

	defaultThreshold float64
	defaultWindow    models.Window
	rollingWindow    int
}

func NewPlayerHandler(datasets *services.DatasetService, analysis *services.AnalysisService, defaultThreshold float64, defaultWindow models.Window, rollingWindow int) *PlayerHandler {
	return &PlayerHandler{
		datasets:         datasets,
		analysis:         analysis,
		defaultThreshold: defaultThreshold,
		defaultWindow:    defaultWindow,
		rollingWindow:    rollingWindow,
	}
}

// PlayerInfo is one roster row with its observation span.
type PlayerInfo struct {
	Player    string          `json:"player_name"`
	Position  models.Position `json:"position,omitempty"`
	Records   int             `json:"records"`
	FirstDate *time.Time      `json:"first_date,omitempty"`
	LastDate  *time.Time      `json:"last_date,omitempty"`
}

// ListPlayers returns every player in the dataset with record spans.
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	ds := h.datasets.Current()
	if ds == nil {
		utils.SendNotFound(c, "No dataset loaded")
		return
	}
	players := make([]PlayerInfo, 0, len(ds.Series))
	for _, series := range ds.Series {
		info := PlayerInfo{
			Player:   series.Player,
			Position: series.Position,
			Records:  len(series.Records),
		}
		if len(series.Records) > 0 {
			first := series.Records[0].Date
			last := series.Records[len(series.Records)-1].Date
			info.FirstDate = &first
			info.LastDate = &last
		}
		players = append(players, info)
	}
	utils.SendSuccessWithMeta(c, players, &utils.Meta{Total: int64(len(players))})
}

// GetStats returns window statistics for one player.
func (h *PlayerHandler) GetStats(c *gin.Context) {
	threshold, ok := thresholdParam(c, h.defaultThreshold)
	if !ok {
		return
	}
	window, ok := windowParam(c, h.defaultWindow)
	if !ok {
		return
	}
	stats, err := h.analysis.PlayerStats(c.Param("name"), window, threshold)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}
	utils.SendSuccess(c, stats)
}

// GetRolling returns the player's series with its rolling average.
func (h *PlayerHandler) GetRolling(c *gin.Context) {
	window, ok := windowParam(c, h.defaultWindow)
	if !ok {
		return
	}
	rollingWindow := h.rollingWindow
	if raw := c.Query("rolling"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.SendValidationError(c, "Invalid rolling window", "expected a positive integer")
			return
		}
		rollingWindow = parsed
	}
	points, err := h.analysis.Rolling(c.Param("name"), rollingWindow, window)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}
	utils.SendSuccessWithMeta(c, points, &utils.Meta{Total: int64(len(points))})
}

// GetWeekly returns calendar-week aggregates for one player.
func (h *PlayerHandler) GetWeekly(c *gin.Context) {
	threshold, ok := thresholdParam(c, h.defaultThreshold)
	if !ok {
		return
	}
	weeks, err := h.analysis.Weekly(c.Param("name"), threshold)
	if err != nil {
		sendAnalysisError(c, err)
		return
	}
	utils.SendSuccessWithMeta(c, weeks, &utils.Meta{Total: int64(len(weeks))})
}

// thresholdParam parses the risk threshold query parameter, writing the
// validation response itself on bad input.
func thresholdParam(c *gin.Context, fallback float64) (float64, bool) {
	raw := c.Query("threshold")
	if raw == "" {
		return fallback, true
	}
	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		utils.SendValidationError(c, "Invalid threshold", "expected a number, e.g. 0 or -0.2")
		return 0, false
	}
	return threshold, true
}

// windowParam parses the analysis window query parameter.
func windowParam(c *gin.Context, fallback models.Window) (models.Window, bool) {
	raw := c.Query("window")
	if raw == "" {
		return fallback, true
	}
	window, err := models.ParseWindow(raw)
	if err != nil {
		utils.SendValidationError(c, "Invalid window", err.Error())
		return 0, false
	}
	return window, true
}

// sendAnalysisError maps service errors onto the response envelope.
func sendAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPlayerNotFound):
		utils.SendNotFound(c, "Player not found")
	case errors.Is(err, services.ErrNoDataset):
		utils.SendNotFound(c, "No dataset loaded")
	default:
		utils.SendInternalError(c, "Analysis failed")
	}
}
