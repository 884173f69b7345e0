// Package ingest normalizes raw tabular EMBOSS exports into canonical
// per-player daily score series.
package ingest

import (
	"errors"
	"fmt"
)

// Format tags which of the two supported input schemas a file uses.
type Format string

const (
	// FormatWide: one row per player-day with a dedicated score column.
	FormatWide Format = "wide"
	// FormatLong: metric/value pairs with a session date column.
	FormatLong Format = "long"
)

// Canonical column names for the two schemas.
const (
	colDate       = "date"
	colScore      = "emboss_baseline_score"
	colPlayerName = "player_name"

	colSessionDate    = "sessionDate"
	colMetric         = "metric"
	colValue          = "value"
	colLongPlayerID   = "playerId"
	colLongPlayerName = "playerName"
)

// metricName selects the EMBOSS rows out of a long-format export.
const metricName = colScore

// FormatError reports a header that matches neither schema. It is
// recoverable: callers substitute synthetic data instead of failing.
type FormatError struct {
	Header []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf(
		"unrecognized data format: header %v matches neither wide columns [%s, %s] nor long columns [%s, %s, %s]",
		e.Header, colDate, colScore, colSessionDate, colMetric, colValue,
	)
}

// IsFormatError reports whether err is (or wraps) a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// DetectFormat resolves the schema once from the header row. Wide takes
// precedence when a header satisfies both column sets.
func DetectFormat(header []string) (Format, error) {
	cols := make(map[string]bool, len(header))
	for _, name := range header {
		cols[name] = true
	}
	if cols[colDate] && cols[colScore] {
		return FormatWide, nil
	}
	if cols[colSessionDate] && cols[colMetric] && cols[colValue] {
		return FormatLong, nil
	}
	return "", &FormatError{Header: header}
}
