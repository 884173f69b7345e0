package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vtiwari/recovery-insights/internal/assessment"
	"github.com/vtiwari/recovery-insights/internal/metrics"
	"github.com/vtiwari/recovery-insights/internal/models"
	"github.com/vtiwari/recovery-insights/internal/selection"
	"github.com/vtiwari/recovery-insights/internal/stats"
)

// ErrPlayerNotFound flags lookups for players absent from the dataset.
var ErrPlayerNotFound = errors.New("player not found in dataset")

// ErrNoDataset flags analysis requests made before any dataset loaded.
var ErrNoDataset = errors.New("no dataset loaded")

// assessmentWindow is the trailing window feeding the classifier and
// the readiness scorer.
const assessmentWindow = models.Window(7)

// RollingPoint is one day of a player's series with its trailing mean.
type RollingPoint struct {
	Date    time.Time `json:"date"`
	Score   float64   `json:"score"`
	Rolling float64   `json:"rolling"`
}

// AnalysisService runs the pure core (stats, assessment, scoring,
// selection) against the active dataset. Every parameter arrives
// explicitly per call; identical (dataset version, parameters) always
// produce identical results, which the squad cache key exploits.
type AnalysisService struct {
	datasets *DatasetService
	scorer   *assessment.Scorer
	cache    *CacheService
	cacheTTL time.Duration
	logger   *logrus.Logger
}

func NewAnalysisService(datasets *DatasetService, scorer *assessment.Scorer, cache *CacheService, cacheTTL time.Duration, logger *logrus.Logger) *AnalysisService {
	return &AnalysisService{
		datasets: datasets,
		scorer:   scorer,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *AnalysisService) series(player string) (models.PlayerSeries, error) {
	if s.datasets.Current() == nil {
		return models.PlayerSeries{}, ErrNoDataset
	}
	series, ok := s.datasets.SeriesFor(player)
	if !ok {
		return models.PlayerSeries{}, ErrPlayerNotFound
	}
	return series, nil
}

// PlayerStats computes window statistics for one player.
func (s *AnalysisService) PlayerStats(player string, window models.Window, threshold float64) (models.WindowStats, error) {
	series, err := s.series(player)
	if err != nil {
		return models.WindowStats{}, err
	}
	metrics.AnalysisRequests.WithLabelValues("stats").Inc()
	return stats.Window(series.Records, window, threshold), nil
}

// Rolling pairs a player's series with its trailing rolling average,
// restricted to the requested window.
func (s *AnalysisService) Rolling(player string, rollingWindow int, window models.Window) ([]RollingPoint, error) {
	series, err := s.series(player)
	if err != nil {
		return nil, err
	}
	metrics.AnalysisRequests.WithLabelValues("rolling").Inc()

	records := series.Records
	if window != models.WindowAll && len(records) > 0 {
		end := records[len(records)-1].Date
		start := end.AddDate(0, 0, -(window.Days() - 1))
		for i, rec := range records {
			if !rec.Date.Before(start) {
				records = records[i:]
				break
			}
		}
	}

	scores := make([]float64, len(records))
	for i, rec := range records {
		scores[i] = rec.Score
	}
	rolling := stats.RollingAverage(scores, rollingWindow)

	points := make([]RollingPoint, len(records))
	for i, rec := range records {
		points[i] = RollingPoint{Date: rec.Date, Score: rec.Score, Rolling: rolling[i]}
	}
	return points, nil
}

// Weekly buckets a player's full history into calendar-week summaries.
func (s *AnalysisService) Weekly(player string, threshold float64) ([]models.WeeklySummary, error) {
	series, err := s.series(player)
	if err != nil {
		return nil, err
	}
	metrics.AnalysisRequests.WithLabelValues("weekly").Inc()
	return stats.WeeklySummaries(series.Records, threshold), nil
}

// Workload computes acute:chronic progression with attached guidance.
func (s *AnalysisService) Workload(player string) (models.WorkloadAdvice, error) {
	series, err := s.series(player)
	if err != nil {
		return models.WorkloadAdvice{}, err
	}
	metrics.AnalysisRequests.WithLabelValues("workload").Inc()
	progression := stats.Workload(series.Records, stats.DefaultAcuteDays, stats.DefaultChronicDays)
	return assessment.AdviseWorkload(progression), nil
}

// Assessment classifies a player's trailing week.
func (s *AnalysisService) Assessment(player string, threshold float64) (models.Assessment, error) {
	series, err := s.series(player)
	if err != nil {
		return models.Assessment{}, err
	}
	metrics.AnalysisRequests.WithLabelValues("assessment").Inc()
	weekStats := stats.Window(series.Records, assessmentWindow, threshold)
	return assessment.Assess(player, weekStats, threshold), nil
}

// Readiness scores one player's trailing week.
func (s *AnalysisService) Readiness(player string, threshold float64) (models.ReadinessScore, error) {
	series, err := s.series(player)
	if err != nil {
		return models.ReadinessScore{}, err
	}
	metrics.AnalysisRequests.WithLabelValues("readiness").Inc()
	return s.scoreSeries(series, threshold), nil
}

// AllReadiness scores every player in the dataset, ordered by score
// descending with name as the deterministic tie-break.
func (s *AnalysisService) AllReadiness(threshold float64) ([]models.ReadinessScore, error) {
	ds := s.datasets.Current()
	if ds == nil {
		return nil, ErrNoDataset
	}
	metrics.AnalysisRequests.WithLabelValues("readiness").Inc()

	scores := make([]models.ReadinessScore, 0, len(ds.Series))
	for _, series := range ds.Series {
		scores = append(scores, s.scoreSeries(series, threshold))
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Player < scores[j].Player
	})
	return scores, nil
}

func (s *AnalysisService) scoreSeries(series models.PlayerSeries, threshold float64) models.ReadinessScore {
	weekStats := stats.Window(series.Records, assessmentWindow, threshold)
	return s.scorer.Score(series.Player, series.Position, weekStats)
}

// SelectSquad assembles the squad assignment for the active dataset,
// serving repeat requests from the result cache. The bool reports a
// cache hit.
func (s *AnalysisService) SelectSquad(ctx context.Context, threshold float64, requirements models.PositionRequirements) (*models.SquadAssignment, bool, error) {
	ds := s.datasets.Current()
	if ds == nil {
		return nil, false, ErrNoDataset
	}

	key := SquadCacheKey(ds.Version, threshold, requirements)
	var cached models.SquadAssignment
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		metrics.CacheHits.Inc()
		return &cached, true, nil
	}
	metrics.CacheMisses.Inc()

	start := time.Now()
	scores, err := s.AllReadiness(threshold)
	if err != nil {
		return nil, false, err
	}
	assignment := selection.Select(scores, requirements)
	metrics.SelectionDuration.Observe(time.Since(start).Seconds())
	metrics.AnalysisRequests.WithLabelValues("squad").Inc()

	if assignment.HasShortfall() {
		s.logger.WithFields(logrus.Fields{
			"component":  "analysis",
			"dataset":    ds.Version,
			"shortfalls": len(assignment.Shortfalls),
		}).Warn("Squad selection completed with position shortfalls")
	}

	s.cache.Set(ctx, key, assignment, s.cacheTTL)
	return assignment, false, nil
}
