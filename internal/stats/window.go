package stats

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/vtiwari/recovery-insights/internal/models"
)

// Trend direction cutoffs: deltas inside the band are Stable.
const trendBand = 0.05

// recentDays is the span of the "recent average" inside any window.
const recentDays = 7

// Window restricts a series to its trailing window of calendar days
// (counted back from the last observation) and computes descriptive
// statistics. The all-history sentinel skips the restriction. An empty
// result carries Days 0 and an Unknown trend; nothing is fabricated.
func Window(records []models.DailyRecord, window models.Window, threshold float64) models.WindowStats {
	recs := records
	if window != models.WindowAll && len(records) > 0 {
		end := records[len(records)-1].Date
		start := end.AddDate(0, 0, -(window.Days() - 1))
		recs = tailFrom(records, start)
	}
	return describe(recs, threshold)
}

// tailFrom returns the suffix of date-ordered records on or after start.
func tailFrom(records []models.DailyRecord, start time.Time) []models.DailyRecord {
	for i, rec := range records {
		if !rec.Date.Before(start) {
			return records[i:]
		}
	}
	return nil
}

func describe(records []models.DailyRecord, threshold float64) models.WindowStats {
	n := len(records)
	if n == 0 {
		return models.WindowStats{Trend: models.TrendUnknown}
	}

	scores := make([]float64, n)
	for i, rec := range records {
		scores[i] = rec.Score
	}

	stats := models.WindowStats{
		Days:   n,
		Latest: scores[n-1],
		Avg:    stat.Mean(scores, nil),
		Min:    scores[0],
		Max:    scores[0],
	}
	best, worst := records[0], records[0]
	for _, rec := range records {
		if rec.Score < stats.Min {
			stats.Min = rec.Score
			worst = rec
		}
		if rec.Score > stats.Max {
			stats.Max = rec.Score
			best = rec
		}
		if rec.Score < threshold {
			stats.RiskDays++
		}
	}
	stats.BestDay = &models.DayScore{Date: best.Date, Score: best.Score}
	stats.WorstDay = &models.DayScore{Date: worst.Date, Score: worst.Score}
	stats.RiskPct = float64(stats.RiskDays) / float64(n) * 100

	recentStart := records[n-1].Date.AddDate(0, 0, -(recentDays - 1))
	recent := tailFrom(records, recentStart)
	recentScores := make([]float64, len(recent))
	for i, rec := range recent {
		recentScores[i] = rec.Score
	}
	stats.RecentAvg = stat.Mean(recentScores, nil)

	if n > 1 {
		stats.Variability = stat.StdDev(scores, nil)
	}

	stats.TrendDelta = trendDelta(scores)
	stats.Trend = direction(stats.TrendDelta)

	scoreRange := stats.Max - stats.Min
	if scoreRange == 0 {
		stats.Consistency = 1
	} else {
		stats.Consistency = clamp01(1 - stats.Variability/scoreRange)
	}

	return stats
}

// trendDelta compares the newer half of the window against the older
// half. Three points fall back to last minus first; fewer read as flat.
func trendDelta(scores []float64) float64 {
	n := len(scores)
	switch {
	case n >= 4:
		mid := n / 2
		return stat.Mean(scores[mid:], nil) - stat.Mean(scores[:mid], nil)
	case n == 3:
		return scores[n-1] - scores[0]
	}
	return 0
}

func direction(delta float64) models.TrendDirection {
	switch {
	case delta > trendBand:
		return models.TrendImproving
	case delta < -trendBand:
		return models.TrendDeclining
	}
	return models.TrendStable
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
