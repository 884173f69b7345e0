package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/vtiwari/recovery-insights/internal/models"
)

// Acute:chronic workload ratio parameters and cutoffs.
const (
	DefaultAcuteDays   = 7
	DefaultChronicDays = 28

	acwrSpikeCutoff      = 1.5
	acwrDetrainingCutoff = 0.8
)

// Workload computes the acute:chronic workload ratio over the most
// recent observations. Scores are shifted onto [0, 1] before averaging
// so the ratio stays meaningful for negative stretches. Fewer than
// chronicDays records is reported as insufficient data rather than a
// partial ratio. A zero chronic load reads as a neutral ratio of 1.0.
func Workload(records []models.DailyRecord, acuteDays, chronicDays int) models.WorkloadProgression {
	progression := models.WorkloadProgression{
		AcuteDays:   acuteDays,
		ChronicDays: chronicDays,
	}
	if len(records) < chronicDays {
		progression.Status = models.WorkloadInsufficientData
		return progression
	}

	progression.AcuteLoad = tailMean(records, acuteDays)
	progression.ChronicLoad = tailMean(records, chronicDays)

	if progression.ChronicLoad == 0 {
		progression.Ratio = 1.0
	} else {
		progression.Ratio = progression.AcuteLoad / progression.ChronicLoad
	}

	switch {
	case progression.Ratio > acwrSpikeCutoff:
		progression.Status = models.WorkloadHighSpike
	case progression.Ratio < acwrDetrainingCutoff:
		progression.Status = models.WorkloadDetrainingRisk
	default:
		progression.Status = models.WorkloadOptimal
	}
	return progression
}

// tailMean averages the normalized loads of the last n records.
func tailMean(records []models.DailyRecord, n int) float64 {
	if n > len(records) {
		n = len(records)
	}
	loads := make([]float64, 0, n)
	for _, rec := range records[len(records)-n:] {
		loads = append(loads, (rec.Score+1)/2)
	}
	return stat.Mean(loads, nil)
}
