package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vtiwari/recovery-insights/internal/models"
)

// wideDateFormats are tried in order for the wide schema's date column.
// The long schema is strict day-first only.
var wideDateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
}

const longDateFormat = "02/01/2006"

// Result is a normalized batch: per-player series sorted by player name,
// each series date-ascending with strictly increasing dates.
type Result struct {
	Series      []models.PlayerSeries
	Format      Format
	RowsTotal   int
	RowsDropped int // unreadable row, unparseable date or score
	RowsSkipped int // long-format rows for other metrics
}

type rowOutcome int

const (
	rowOK rowOutcome = iota
	rowSkip
	rowDrop
)

// Load parses a CSV export, detects its schema and normalizes it.
// Rows with unparseable dates or scores are dropped, not fatal; duplicate
// (player, date) pairs keep the last occurrence. A header matching
// neither schema yields a FormatError.
func Load(r io.Reader, roster models.Roster) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &FormatError{}
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	format, err := DetectFormat(header)
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	result := &Result{Format: format}
	type dayKey struct {
		player string
		day    time.Time
	}
	latest := make(map[dayKey]float64)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A row that fails to read still counts toward the total,
			// so drops can never exceed it.
			result.RowsTotal++
			result.RowsDropped++
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			// The stream itself failed; keep what parsed so far.
			break
		}
		result.RowsTotal++

		var rec models.DailyRecord
		var outcome rowOutcome
		switch format {
		case FormatWide:
			rec, outcome = parseWideRow(row, idx)
		case FormatLong:
			rec, outcome = parseLongRow(row, idx)
		}
		switch outcome {
		case rowSkip:
			result.RowsSkipped++
			continue
		case rowDrop:
			result.RowsDropped++
			continue
		}
		latest[dayKey{rec.Player, rec.Date}] = rec.Score
	}

	byPlayer := make(map[string][]models.DailyRecord)
	for key, score := range latest {
		byPlayer[key.player] = append(byPlayer[key.player], models.DailyRecord{
			Player: key.player,
			Date:   key.day,
			Score:  score,
		})
	}

	result.Series = make([]models.PlayerSeries, 0, len(byPlayer))
	for player, records := range byPlayer {
		sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
		result.Series = append(result.Series, models.PlayerSeries{
			Player:   player,
			Position: roster.PositionOf(player),
			Records:  records,
		})
	}
	sort.Slice(result.Series, func(i, j int) bool { return result.Series[i].Player < result.Series[j].Player })

	return result, nil
}

func parseWideRow(row []string, idx map[string]int) (models.DailyRecord, rowOutcome) {
	date, ok := parseDate(cell(row, idx, colDate), wideDateFormats)
	if !ok {
		return models.DailyRecord{}, rowDrop
	}
	score, err := strconv.ParseFloat(cell(row, idx, colScore), 64)
	if err != nil {
		return models.DailyRecord{}, rowDrop
	}
	player := cell(row, idx, colPlayerName)
	if player == "" {
		player = models.FallbackPlayerName
	}
	return models.DailyRecord{Player: player, Date: date, Score: score}, rowOK
}

func parseLongRow(row []string, idx map[string]int) (models.DailyRecord, rowOutcome) {
	if cell(row, idx, colMetric) != metricName {
		return models.DailyRecord{}, rowSkip
	}
	date, ok := parseDate(cell(row, idx, colSessionDate), []string{longDateFormat})
	if !ok {
		return models.DailyRecord{}, rowDrop
	}
	score, err := strconv.ParseFloat(cell(row, idx, colValue), 64)
	if err != nil {
		return models.DailyRecord{}, rowDrop
	}
	player := cell(row, idx, colLongPlayerID)
	if player == "" {
		player = cell(row, idx, colLongPlayerName)
	}
	if player == "" {
		player = models.FallbackPlayerName
	}
	return models.DailyRecord{Player: player, Date: date, Score: score}, rowOK
}

// cell fetches a named column from a row, empty when the column is absent
// or the row is short.
func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseDate tries each layout in order and truncates to UTC midnight so
// every observation keys to a calendar day.
func parseDate(s string, layouts []string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
