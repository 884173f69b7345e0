package models

// ReadinessStatus is the bucket a readiness score falls into.
type ReadinessStatus string

const (
	ReadinessOptimal ReadinessStatus = "optimal"
	ReadinessReady   ReadinessStatus = "ready"
	ReadinessLimited ReadinessStatus = "limited"
	ReadinessBench   ReadinessStatus = "bench"
	ReadinessRest    ReadinessStatus = "rest"
	ReadinessUnknown ReadinessStatus = "unknown"
)

// MaxMinutes is the suggested playing-time ceiling for the bucket.
func (s ReadinessStatus) MaxMinutes() int {
	switch s {
	case ReadinessOptimal, ReadinessReady:
		return 90
	case ReadinessLimited:
		return 60
	case ReadinessBench:
		return 30
	}
	return 0
}

// Selectable reports whether a player in this bucket may be picked for
// the starting XI without a shortfall fill.
func (s ReadinessStatus) Selectable() bool {
	switch s {
	case ReadinessOptimal, ReadinessReady, ReadinessLimited, ReadinessBench:
		return true
	}
	return false
}

// ScoreComponent is one normalized, weighted term of the readiness score.
type ScoreComponent struct {
	Normalized float64 `json:"normalized"`
	Weight     float64 `json:"weight"`
	Weighted   float64 `json:"weighted"`
}

// ScoreBreakdown exposes how each term contributed to the final score.
type ScoreBreakdown struct {
	Latest      ScoreComponent `json:"latest"`
	RecentAvg   ScoreComponent `json:"recent_avg"`
	Trend       ScoreComponent `json:"trend"`
	Variability ScoreComponent `json:"variability"`
	RiskDays    ScoreComponent `json:"risk_days"`
}

// ReadinessScore is the bounded 0-100 composite for one player, with the
// status bucket derived from it. Unknown status carries the neutral 50.
type ReadinessScore struct {
	Player     string          `json:"player_name"`
	Position   Position        `json:"position,omitempty"`
	Score      int             `json:"score"`
	Status     ReadinessStatus `json:"status"`
	MaxMinutes int             `json:"max_minutes"`
	TrendDelta float64         `json:"trend_delta"`
	Trend      TrendDirection  `json:"trend"`
	Breakdown  *ScoreBreakdown `json:"breakdown,omitempty"`
}
