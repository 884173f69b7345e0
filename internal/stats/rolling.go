// Package stats computes descriptive statistics over player score
// series: rolling averages, weekly aggregates, trailing-window summaries
// and workload progression. All functions are pure; parameters arrive
// explicitly per call.
package stats

import "gonum.org/v1/gonum/stat"

// RollingAverage smooths a score sequence with a trailing mean. Position
// i averages the trailing min(window, i+1) values, so the effective
// window shrinks at the start and early points are always defined.
// A window of 1 or less returns a copy of the input.
func RollingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	for i := range values {
		start := i + 1 - window
		if start < 0 {
			start = 0
		}
		out[i] = stat.Mean(values[start:i+1], nil)
	}
	return out
}
