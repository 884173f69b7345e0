package models

import (
	"fmt"
	"strings"
	"time"
)

// TrendDirection is the directional indicator derived from a score window.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendDeclining TrendDirection = "declining"
	TrendUnknown   TrendDirection = "unknown"
)

// Window selects how many trailing calendar days of history an analysis
// covers. Zero is the all-history sentinel.
type Window int

const WindowAll Window = 0

// WindowPresets are the selectable analysis periods.
var WindowPresets = []Window{7, 14, 30, 90, WindowAll}

func (w Window) Valid() bool {
	for _, preset := range WindowPresets {
		if w == preset {
			return true
		}
	}
	return false
}

func (w Window) Days() int { return int(w) }

func (w Window) String() string {
	if w == WindowAll {
		return "all"
	}
	return fmt.Sprintf("%dd", int(w))
}

// ParseWindow accepts "7", "14", "30", "90" or "all".
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "7", "7d":
		return Window(7), nil
	case "14", "14d":
		return Window(14), nil
	case "30", "30d":
		return Window(30), nil
	case "90", "90d":
		return Window(90), nil
	case "all", "0", "":
		return WindowAll, nil
	}
	return 0, fmt.Errorf("invalid window: %q (expected 7, 14, 30, 90 or all)", s)
}

// DayScore pairs a date with its observed score.
type DayScore struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// WindowStats are descriptive statistics over a trailing window of one
// player's series. Days == 0 is the explicit no-data marker: every other
// field is then meaningless and must not be read.
type WindowStats struct {
	Days        int            `json:"days"`
	Latest      float64        `json:"latest"`
	Avg         float64        `json:"avg"`
	RecentAvg   float64        `json:"recent_avg"`
	Min         float64        `json:"min"`
	Max         float64        `json:"max"`
	TrendDelta  float64        `json:"trend_delta"`
	Trend       TrendDirection `json:"trend"`
	Variability float64        `json:"variability"`
	RiskDays    int            `json:"risk_days"`
	RiskPct     float64        `json:"risk_pct"`
	BestDay     *DayScore      `json:"best_day,omitempty"`
	WorstDay    *DayScore      `json:"worst_day,omitempty"`
	Consistency float64        `json:"consistency"`
}

// HasData reports whether the window held any observations.
func (s WindowStats) HasData() bool { return s.Days > 0 }

// WeeklySummary aggregates one calendar week of observations. Weeks end
// on Sunday; weeks without observations are never emitted.
type WeeklySummary struct {
	WeekEnding time.Time `json:"week_ending"`
	Avg        float64   `json:"avg"`
	Min        float64   `json:"min"`
	Max        float64   `json:"max"`
	Stdev      float64   `json:"stdev"`
	RiskDays   int       `json:"risk_days"`
	DaysInWeek int       `json:"days_in_week"`
	RiskPct    float64   `json:"risk_pct"`
}

// WorkloadStatus classifies acute:chronic workload progression.
type WorkloadStatus string

const (
	WorkloadInsufficientData WorkloadStatus = "insufficient_data"
	WorkloadHighSpike        WorkloadStatus = "high_spike"
	WorkloadDetrainingRisk   WorkloadStatus = "detraining_risk"
	WorkloadOptimal          WorkloadStatus = "optimal_progression"
)

// WorkloadProgression is the acute:chronic workload ratio analysis for
// one player. Ratio and loads are zero when status is insufficient_data.
type WorkloadProgression struct {
	Status      WorkloadStatus `json:"status"`
	Ratio       float64        `json:"ratio"`
	AcuteLoad   float64        `json:"acute_load"`
	ChronicLoad float64        `json:"chronic_load"`
	AcuteDays   int            `json:"acute_days"`
	ChronicDays int            `json:"chronic_days"`
}
