package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtiwari/recovery-insights/internal/models"
	"github.com/vtiwari/recovery-insights/internal/stats"
)

// weekOf computes 7-day window statistics over one record per day.
func weekOf(t *testing.T, threshold float64, scores ...float64) models.WindowStats {
	t.Helper()
	end := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	records := make([]models.DailyRecord, len(scores))
	for i, score := range scores {
		records[i] = models.DailyRecord{
			Player: "Test Player",
			Date:   end.AddDate(0, 0, -(len(scores) - 1 - i)),
			Score:  score,
		}
	}
	return stats.Window(records, models.Window(7), threshold)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		scores    []float64
		threshold float64
		want      models.RiskStatus
	}{
		{
			// One risk day trips the moderate rule even with a healthy average.
			name:      "single risk day is moderate",
			scores:    []float64{0.5, 0.3, -0.1, 0.2, 0.4, 0.1, 0.6},
			threshold: 0.0,
			want:      models.RiskStatusModerate,
		},
		{
			name:      "deep sustained deficit is high risk",
			scores:    []float64{-0.5, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5},
			threshold: 0.0,
			want:      models.RiskStatusHigh,
		},
		{
			name:      "three risk days escalate regardless of average",
			scores:    []float64{0.9, 0.9, 0.9, 0.9, -0.01, -0.01, -0.01},
			threshold: 0.0,
			want:      models.RiskStatusHigh,
		},
		{
			name:      "recent average just below threshold is moderate",
			scores:    []float64{0.25, 0.25, 0.25, 0.25, 0.25, 0.0, 0.0},
			threshold: 0.2,
			want:      models.RiskStatusModerate,
		},
		{
			name:      "clean week is optimal",
			scores:    []float64{0.4, 0.5, 0.3, 0.6, 0.4, 0.5, 0.4},
			threshold: 0.0,
			want:      models.RiskStatusOptimal,
		},
		{
			name:      "raised threshold reclassifies the same week",
			scores:    []float64{0.4, 0.5, 0.3, 0.6, 0.4, 0.5, 0.4},
			threshold: 0.45,
			want:      models.RiskStatusHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(weekOf(t, tt.threshold, tt.scores...), tt.threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyNoDataIsUnknown(t *testing.T) {
	got := Classify(models.WindowStats{Trend: models.TrendUnknown}, 0.0)
	assert.Equal(t, models.RiskStatusUnknown, got)
}

func TestAssessAttachesRecommendations(t *testing.T) {
	weekStats := weekOf(t, 0.0, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5, -0.5)

	result := Assess("Wesley Fofana", weekStats, 0.0)

	assert.Equal(t, "Wesley Fofana", result.Player)
	assert.Equal(t, models.RiskStatusHigh, result.Status)
	assert.NotEmpty(t, result.Title)
	assert.NotEmpty(t, result.Recommendations)
	assert.Equal(t, "Very Consistent", result.ConsistencyLabel)
}

func TestRecommendationVariantsAreDeterministic(t *testing.T) {
	// Acute variant: a day far below threshold.
	acute := weekOf(t, 0.0, -0.9, -0.3, -0.3, -0.3, -0.3, -0.3, -0.3)
	_, acuteRecs := Recommendations(models.RiskStatusHigh, acute, 0.0)

	// Cumulative variant: uniformly low, nothing acute, tight spread.
	cumulative := weekOf(t, 0.0, -0.3, -0.3, -0.3, -0.3, -0.3, -0.3, -0.3)
	_, cumulativeRecs := Recommendations(models.RiskStatusHigh, cumulative, 0.0)

	require.NotEqual(t, acuteRecs, cumulativeRecs)

	// Identical stats always produce the identical set.
	_, again := Recommendations(models.RiskStatusHigh, acute, 0.0)
	assert.Equal(t, acuteRecs, again)
}

func TestConsistencyLabel(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"flat week", []float64{0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3}, "Very Consistent"},
		{"wild swings", []float64{0.9, -0.9, 0.9, -0.9, 0.9, -0.9, 0.9}, "Highly Variable"},
		{"single point", []float64{0.3}, "Insufficient Data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConsistencyLabel(weekOf(t, 0.0, tt.scores...)))
		})
	}
}
