package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtiwari/recovery-insights/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(d time.Time, score float64) models.DailyRecord {
	return models.DailyRecord{Player: "Test Player", Date: d, Score: score}
}

func TestWeekEnding(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{"monday maps forward", day(2025, time.March, 3), day(2025, time.March, 9)},
		{"sunday maps to itself", day(2025, time.March, 9), day(2025, time.March, 9)},
		{"saturday maps to next day", day(2025, time.March, 8), day(2025, time.March, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekEnding(tt.date))
		})
	}
}

func TestWeeklySummaries(t *testing.T) {
	// Two observed weeks with a fully silent week between them.
	records := []models.DailyRecord{
		rec(day(2025, time.March, 3), 0.5),  // week ending Mar 9
		rec(day(2025, time.March, 4), -0.3), // week ending Mar 9
		rec(day(2025, time.March, 5), 0.1),  // week ending Mar 9
		rec(day(2025, time.March, 17), 0.2), // week ending Mar 23
	}

	weeks := WeeklySummaries(records, 0.0)
	require.Len(t, weeks, 2, "silent weeks must not be fabricated")

	first := weeks[0]
	assert.Equal(t, day(2025, time.March, 9), first.WeekEnding)
	assert.Equal(t, 3, first.DaysInWeek)
	assert.InDelta(t, 0.1, first.Avg, 1e-9)
	assert.Equal(t, -0.3, first.Min)
	assert.Equal(t, 0.5, first.Max)
	assert.Equal(t, 1, first.RiskDays)
	assert.InDelta(t, 100.0/3, first.RiskPct, 1e-9)
	assert.Greater(t, first.Stdev, 0.0)

	second := weeks[1]
	assert.Equal(t, day(2025, time.March, 23), second.WeekEnding)
	assert.Equal(t, 1, second.DaysInWeek)
	assert.Equal(t, 0.0, second.Stdev, "single observation has zero stdev")
	assert.Equal(t, 0, second.RiskDays)
}

func TestWeeklySummariesDayTotalsNeverExceedInput(t *testing.T) {
	records := []models.DailyRecord{
		rec(day(2025, time.January, 1), 0.1),
		rec(day(2025, time.January, 2), 0.2),
		rec(day(2025, time.January, 10), -0.4),
		rec(day(2025, time.January, 20), 0.6),
		rec(day(2025, time.January, 21), 0.3),
	}

	weeks := WeeklySummaries(records, 0.0)
	total := 0
	for _, w := range weeks {
		total += w.DaysInWeek
	}
	assert.LessOrEqual(t, total, len(records))

	for i := 1; i < len(weeks); i++ {
		assert.True(t, weeks[i-1].WeekEnding.Before(weeks[i].WeekEnding), "weeks must sort ascending")
	}
}

func TestWeeklySummariesEmptyInput(t *testing.T) {
	assert.Empty(t, WeeklySummaries(nil, 0.0))
}
