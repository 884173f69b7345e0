package assessment

import (
	"math"

	"github.com/vtiwari/recovery-insights/internal/models"
)

// NeutralScore is reported when a player has no recent observations.
const NeutralScore = 50

// Readiness status cutoffs on the 0-100 score.
const (
	optimalCutoff = 80
	readyCutoff   = 60
	limitedCutoff = 40
	benchCutoff   = 20
)

// Weights are the readiness score term weights. They are defaults, not
// law: the scorer renormalizes whatever it is given to sum to 1.
type Weights struct {
	Latest      float64
	RecentAvg   float64
	Trend       float64
	Variability float64
	RiskDays    float64
}

// DefaultWeights returns the standard term weighting.
func DefaultWeights() Weights {
	return Weights{
		Latest:      0.35,
		RecentAvg:   0.30,
		Trend:       0.15,
		Variability: 0.10,
		RiskDays:    0.10,
	}
}

func (w Weights) sum() float64 {
	return w.Latest + w.RecentAvg + w.Trend + w.Variability + w.RiskDays
}

// DefaultVariabilityScale is the stdev at which the variability term
// bottoms out.
const DefaultVariabilityScale = 0.5

// Scorer computes bounded readiness scores from 7-day window statistics.
type Scorer struct {
	weights Weights
	scale   float64
}

// NewScorer builds a scorer. Weight sets that do not sum to 1 are
// renormalized; a non-positive sum or scale falls back to the defaults.
func NewScorer(weights Weights, variabilityScale float64) *Scorer {
	sum := weights.sum()
	if sum <= 0 {
		weights = DefaultWeights()
		sum = weights.sum()
	}
	weights.Latest /= sum
	weights.RecentAvg /= sum
	weights.Trend /= sum
	weights.Variability /= sum
	weights.RiskDays /= sum

	if variabilityScale <= 0 {
		variabilityScale = DefaultVariabilityScale
	}
	return &Scorer{weights: weights, scale: variabilityScale}
}

// Score maps a player's 7-day statistics onto [0, 100]. A window with no
// observations yields the neutral midpoint and Unknown status; missing
// values never enter the arithmetic as zeros.
func (s *Scorer) Score(player string, position models.Position, stats models.WindowStats) models.ReadinessScore {
	if !stats.HasData() {
		return models.ReadinessScore{
			Player:   player,
			Position: position,
			Score:    NeutralScore,
			Status:   models.ReadinessUnknown,
			Trend:    models.TrendUnknown,
		}
	}

	latestTerm := clampUnit((stats.Latest + 1) / 2)
	avgTerm := clampUnit((stats.RecentAvg + 1) / 2)
	trendTerm := trendTerm(stats.Trend)
	variabilityTerm := clampUnit(1 - stats.Variability/s.scale)
	riskTerm := clampUnit(1 - float64(stats.RiskDays)/7)

	breakdown := models.ScoreBreakdown{
		Latest:      component(latestTerm, s.weights.Latest),
		RecentAvg:   component(avgTerm, s.weights.RecentAvg),
		Trend:       component(trendTerm, s.weights.Trend),
		Variability: component(variabilityTerm, s.weights.Variability),
		RiskDays:    component(riskTerm, s.weights.RiskDays),
	}
	weighted := breakdown.Latest.Weighted +
		breakdown.RecentAvg.Weighted +
		breakdown.Trend.Weighted +
		breakdown.Variability.Weighted +
		breakdown.RiskDays.Weighted

	score := int(math.Round(weighted * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	status := statusFor(score)
	return models.ReadinessScore{
		Player:     player,
		Position:   position,
		Score:      score,
		Status:     status,
		MaxMinutes: status.MaxMinutes(),
		TrendDelta: stats.TrendDelta,
		Trend:      stats.Trend,
		Breakdown:  &breakdown,
	}
}

func component(normalized, weight float64) models.ScoreComponent {
	return models.ScoreComponent{
		Normalized: normalized,
		Weight:     weight,
		Weighted:   normalized * weight,
	}
}

func trendTerm(trend models.TrendDirection) float64 {
	switch trend {
	case models.TrendImproving:
		return 1.0
	case models.TrendDeclining:
		return 0.0
	}
	return 0.5
}

func statusFor(score int) models.ReadinessStatus {
	switch {
	case score >= optimalCutoff:
		return models.ReadinessOptimal
	case score >= readyCutoff:
		return models.ReadinessReady
	case score >= limitedCutoff:
		return models.ReadinessLimited
	case score >= benchCutoff:
		return models.ReadinessBench
	}
	return models.ReadinessRest
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
