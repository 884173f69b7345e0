package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vtiwari/recovery-insights/internal/models"
	"github.com/vtiwari/recovery-insights/internal/services"
	"github.com/vtiwari/recovery-insights/pkg/utils"
)

type DatasetHandler struct {
	datasets *services.DatasetService
}

func NewDatasetHandler(datasets *services.DatasetService) *DatasetHandler {
	return &DatasetHandler{datasets: datasets}
}

// DatasetInfo is the dataset summary the API exposes; the record series
// themselves are only reachable through the analysis routes.
type DatasetInfo struct {
	Version   string     `json:"version"`
	Source    string     `json:"source"`
	LoadedAt  time.Time  `json:"loaded_at"`
	Players   int        `json:"players"`
	Records   int        `json:"records"`
	FirstDate *time.Time `json:"first_date,omitempty"`
	LastDate  *time.Time `json:"last_date,omitempty"`
}

func datasetInfo(ds *models.Dataset) DatasetInfo {
	info := DatasetInfo{
		Version:  ds.Version,
		Source:   string(ds.Source),
		LoadedAt: ds.LoadedAt,
		Players:  len(ds.Series),
		Records:  ds.RecordCount(),
	}
	if first, last, ok := ds.DateSpan(); ok {
		info.FirstDate = &first
		info.LastDate = &last
	}
	return info
}

// GetDataset returns the active dataset summary.
func (h *DatasetHandler) GetDataset(c *gin.Context) {
	ds := h.datasets.Current()
	if ds == nil {
		utils.SendNotFound(c, "No dataset loaded")
		return
	}
	utils.SendSuccess(c, datasetInfo(ds))
}

// Upload replaces the dataset from a multipart CSV file. A payload
// matching neither schema is recoverable: the synthetic dataset is
// substituted and the format error surfaces as a warning, so the
// pipeline keeps producing valid output.
func (h *DatasetHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.SendValidationError(c, "Missing upload", "expected multipart field 'file'")
		return
	}

	f, err := file.Open()
	if err != nil {
		utils.SendInternalError(c, "Failed to read upload")
		return
	}
	defer f.Close()

	ds, warn, err := h.datasets.LoadFromReader(f, models.DatasetSourceUpload)
	if err != nil {
		utils.SendInternalError(c, "Failed to load dataset")
		return
	}
	if warn != nil {
		utils.SendSuccessWithMeta(c, datasetInfo(ds), &utils.Meta{
			Warning: utils.NewAppError(utils.ErrCodeDataFormat, "Unrecognized data format, synthetic dataset substituted", warn.Error()).Error(),
		})
		return
	}
	utils.SendSuccess(c, datasetInfo(ds))
}

type syntheticRequest struct {
	Players int `json:"players" binding:"omitempty,min=1"`
	Days    int `json:"days" binding:"omitempty,min=1"`
}

// GenerateSynthetic regenerates the synthetic dataset, optionally sized
// by the request body.
func (h *DatasetHandler) GenerateSynthetic(c *gin.Context) {
	var req syntheticRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.SendValidationError(c, "Invalid request body", err.Error())
			return
		}
	}
	ds := h.datasets.LoadSynthetic(req.Players, req.Days)
	utils.SendSuccess(c, datasetInfo(ds))
}
