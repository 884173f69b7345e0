package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vtiwari/recovery-insights/internal/models"
)

// flatThen builds chronicDays records: the leading stretch at base and
// the final acuteDays at recent.
func flatThen(base, recent float64, total, acuteDays int) []models.DailyRecord {
	end := day(2025, time.May, 31)
	scores := make([]float64, total)
	for i := range scores {
		if i >= total-acuteDays {
			scores[i] = recent
		} else {
			scores[i] = base
		}
	}
	return seriesFrom(end, scores...)
}

func TestWorkloadInsufficientData(t *testing.T) {
	records := flatThen(0.2, 0.2, 20, 7)

	got := Workload(records, DefaultAcuteDays, DefaultChronicDays)

	assert.Equal(t, models.WorkloadInsufficientData, got.Status)
	assert.Equal(t, 0.0, got.Ratio)
}

func TestWorkloadClassification(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		recent float64
		want   models.WorkloadStatus
	}{
		{"steady load is optimal", 0.2, 0.2, models.WorkloadOptimal},
		{"sharp recent rise spikes", -0.9, 1.0, models.WorkloadHighSpike},
		{"recent collapse reads as detraining", 0.8, -0.8, models.WorkloadDetrainingRisk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := flatThen(tt.base, tt.recent, DefaultChronicDays, DefaultAcuteDays)
			got := Workload(records, DefaultAcuteDays, DefaultChronicDays)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, DefaultAcuteDays, got.AcuteDays)
			assert.Equal(t, DefaultChronicDays, got.ChronicDays)
		})
	}
}

func TestWorkloadSteadyRatioIsOne(t *testing.T) {
	records := flatThen(0.4, 0.4, DefaultChronicDays, DefaultAcuteDays)

	got := Workload(records, DefaultAcuteDays, DefaultChronicDays)

	assert.InDelta(t, 1.0, got.Ratio, 1e-9)
	assert.InDelta(t, 0.7, got.AcuteLoad, 1e-9, "loads normalize scores onto [0, 1]")
}
