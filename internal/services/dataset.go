// Package services owns the loaded dataset and orchestrates the pure
// analysis core for the HTTP layer.
package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vtiwari/recovery-insights/internal/ingest"
	"github.com/vtiwari/recovery-insights/internal/metrics"
	"github.com/vtiwari/recovery-insights/internal/models"
	"github.com/vtiwari/recovery-insights/internal/synthetic"
)

// DatasetService holds the active dataset. Loads swap it wholesale
// under the lock; the dataset itself is immutable, so readers hand out
// the pointer and never copy. Every successful load gets a fresh UUID
// version, which downstream cache keys incorporate.
type DatasetService struct {
	mu      sync.RWMutex
	current *models.Dataset

	roster           models.Roster
	syntheticPlayers int
	syntheticDays    int
	logger           *logrus.Logger
}

func NewDatasetService(roster models.Roster, syntheticPlayers, syntheticDays int, logger *logrus.Logger) *DatasetService {
	return &DatasetService{
		roster:           roster,
		syntheticPlayers: syntheticPlayers,
		syntheticDays:    syntheticDays,
		logger:           logger,
	}
}

// Current returns the active dataset, nil before the first load.
func (s *DatasetService) Current() *models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SeriesFor looks up one player's series in the active dataset.
func (s *DatasetService) SeriesFor(player string) (models.PlayerSeries, bool) {
	ds := s.Current()
	if ds == nil {
		return models.PlayerSeries{}, false
	}
	return ds.SeriesFor(player)
}

// Roster returns the position lookup used for ingestion.
func (s *DatasetService) Roster() models.Roster {
	return s.roster
}

// LoadFromFile loads the configured CSV export. A missing file or an
// unrecognized format falls back to the synthetic generator so the
// service always starts with usable data; other I/O errors propagate.
func (s *DatasetService) LoadFromFile(path string) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("path", path).Info("Data file absent, generating synthetic dataset")
			return s.LoadSynthetic(0, 0), nil
		}
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	ds, warn, err := s.LoadFromReader(f, models.DatasetSourceFile)
	if err != nil {
		return nil, err
	}
	if warn != nil {
		s.logger.WithField("path", path).WithError(warn).Warn("Data file rejected, synthetic dataset substituted")
	}
	return ds, nil
}

// LoadFromReader normalizes a CSV payload and swaps it in. A format
// error is recoverable: the synthetic dataset is substituted and the
// rejection comes back as a non-nil warning so callers can surface the
// substitution. Any other error leaves the active dataset untouched.
func (s *DatasetService) LoadFromReader(r io.Reader, source models.DatasetSource) (*models.Dataset, *ingest.FormatError, error) {
	result, err := ingest.Load(r, s.roster)
	if err != nil {
		var formatErr *ingest.FormatError
		if errors.As(err, &formatErr) {
			metrics.FormatErrors.Inc()
			return s.LoadSynthetic(0, 0), formatErr, nil
		}
		return nil, nil, err
	}

	ds := s.swap(source, result.Series)
	s.logger.WithFields(logrus.Fields{
		"component": "dataset",
		"version":   ds.Version,
		"source":    string(source),
		"format":    string(result.Format),
		"players":   len(ds.Series),
		"records":   ds.RecordCount(),
		"dropped":   result.RowsDropped,
	}).Info("Dataset loaded")
	return ds, nil, nil
}

// LoadSynthetic swaps in a freshly generated dataset. Zero arguments
// fall back to the configured defaults.
func (s *DatasetService) LoadSynthetic(players, days int) *models.Dataset {
	if players <= 0 {
		players = s.syntheticPlayers
	}
	if days <= 0 {
		days = s.syntheticDays
	}
	series := synthetic.Generate(players, days)
	ds := s.swap(models.DatasetSourceSynthetic, series)
	s.logger.WithFields(logrus.Fields{
		"component": "dataset",
		"version":   ds.Version,
		"players":   players,
		"days":      days,
	}).Info("Synthetic dataset generated")
	return ds
}

func (s *DatasetService) swap(source models.DatasetSource, series []models.PlayerSeries) *models.Dataset {
	ds := models.NewDataset(uuid.NewString(), source, time.Now().UTC(), series)
	s.mu.Lock()
	s.current = ds
	s.mu.Unlock()
	metrics.DatasetLoads.WithLabelValues(string(source)).Inc()
	return ds
}
