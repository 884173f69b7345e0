package stats

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/vtiwari/recovery-insights/internal/models"
)

// WeekEnding maps a date to the Sunday closing its calendar week.
func WeekEnding(d time.Time) time.Time {
	offset := (7 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, offset)
}

// WeeklySummaries buckets records into calendar weeks ending on Sunday
// and aggregates each week that holds at least one observation. Weeks
// without records are omitted, never zero-filled. Output is ordered by
// week ascending.
func WeeklySummaries(records []models.DailyRecord, threshold float64) []models.WeeklySummary {
	byWeek := make(map[time.Time][]float64)
	for _, rec := range records {
		week := WeekEnding(rec.Date)
		byWeek[week] = append(byWeek[week], rec.Score)
	}

	summaries := make([]models.WeeklySummary, 0, len(byWeek))
	for week, scores := range byWeek {
		summary := models.WeeklySummary{
			WeekEnding: week,
			Avg:        stat.Mean(scores, nil),
			Min:        scores[0],
			Max:        scores[0],
			DaysInWeek: len(scores),
		}
		for _, score := range scores {
			if score < summary.Min {
				summary.Min = score
			}
			if score > summary.Max {
				summary.Max = score
			}
			if score < threshold {
				summary.RiskDays++
			}
		}
		if len(scores) > 1 {
			summary.Stdev = stat.StdDev(scores, nil)
		}
		summary.RiskPct = float64(summary.RiskDays) / float64(summary.DaysInWeek) * 100
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].WeekEnding.Before(summaries[j].WeekEnding) })
	return summaries
}
