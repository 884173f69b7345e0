// Package assessment turns window statistics into status
// classifications, recommendation sets and readiness scores.
package assessment

import (
	"github.com/vtiwari/recovery-insights/internal/models"
)

// Margin below the risk threshold that escalates straight to high risk.
const highRiskMargin = 0.2

// Risk-day counts that trigger each tier within the 7-day window.
const (
	highRiskDays     = 3
	moderateRiskDays = 1
)

// rule is one (predicate, outcome) pair. Rules are evaluated in order
// and the first match wins, keeping the policy data-driven and testable
// apart from the scoring arithmetic.
type rule struct {
	outcome models.RiskStatus
	matches func(stats models.WindowStats, threshold float64) bool
}

var classificationRules = []rule{
	{
		outcome: models.RiskStatusHigh,
		matches: func(s models.WindowStats, threshold float64) bool {
			return s.RecentAvg < threshold-highRiskMargin || s.RiskDays >= highRiskDays
		},
	},
	{
		outcome: models.RiskStatusModerate,
		matches: func(s models.WindowStats, threshold float64) bool {
			return s.RecentAvg < threshold || s.RiskDays >= moderateRiskDays
		},
	},
	{
		outcome: models.RiskStatusOptimal,
		matches: func(models.WindowStats, float64) bool { return true },
	},
}

// Classify maps 7-day window statistics to a risk status. A window with
// no observations is Unknown, never defaulted into a tier.
func Classify(stats models.WindowStats, threshold float64) models.RiskStatus {
	if !stats.HasData() {
		return models.RiskStatusUnknown
	}
	for _, r := range classificationRules {
		if r.matches(stats, threshold) {
			return r.outcome
		}
	}
	return models.RiskStatusOptimal
}

// Assess classifies a player's window and attaches the matching
// recommendation set and insight labels.
func Assess(player string, stats models.WindowStats, threshold float64) models.Assessment {
	status := Classify(stats, threshold)
	title, recommendations := Recommendations(status, stats, threshold)
	return models.Assessment{
		Player:           player,
		Status:           status,
		Title:            title,
		Recommendations:  recommendations,
		ConsistencyLabel: ConsistencyLabel(stats),
		Stats:            stats,
	}
}
