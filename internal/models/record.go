package models

import (
	"sort"
	"time"
)

// FallbackPlayerName is assigned to rows that carry no player identifier.
const FallbackPlayerName = "Unknown Player"

// DailyRecord is one EMBOSS observation for one player on one day.
// Scores live in [-1.0, 1.0]; higher is better recovery.
type DailyRecord struct {
	Player string    `json:"player_name"`
	Date   time.Time `json:"date"`
	Score  float64   `json:"emboss_baseline_score"`
}

// PlayerSeries is a player's record sequence, ordered by date ascending
// with strictly increasing dates. Gaps between days are allowed.
type PlayerSeries struct {
	Player   string        `json:"player_name"`
	Position Position      `json:"position,omitempty"`
	Records  []DailyRecord `json:"records"`
}

func (s PlayerSeries) Len() int { return len(s.Records) }

// Scores returns the score sequence in date order.
func (s PlayerSeries) Scores() []float64 {
	scores := make([]float64, len(s.Records))
	for i, rec := range s.Records {
		scores[i] = rec.Score
	}
	return scores
}

// LastDate reports the most recent observation date, false when empty.
func (s PlayerSeries) LastDate() (time.Time, bool) {
	if len(s.Records) == 0 {
		return time.Time{}, false
	}
	return s.Records[len(s.Records)-1].Date, true
}

// DatasetSource records where the active dataset came from.
type DatasetSource string

const (
	DatasetSourceFile      DatasetSource = "file"
	DatasetSourceUpload    DatasetSource = "upload"
	DatasetSourceSynthetic DatasetSource = "synthetic"
)

// Dataset is an immutable, versioned batch of player series. All analysis
// is a pure function of a Dataset plus request parameters.
type Dataset struct {
	Version  string         `json:"version"`
	Source   DatasetSource  `json:"source"`
	LoadedAt time.Time      `json:"loaded_at"`
	Series   []PlayerSeries `json:"series"`

	byPlayer map[string]int
}

// NewDataset builds a dataset with series sorted by player name and an
// index for lookups. The caller must not mutate series afterwards.
func NewDataset(version string, source DatasetSource, loadedAt time.Time, series []PlayerSeries) *Dataset {
	sort.Slice(series, func(i, j int) bool { return series[i].Player < series[j].Player })
	byPlayer := make(map[string]int, len(series))
	for i, s := range series {
		byPlayer[s.Player] = i
	}
	return &Dataset{
		Version:  version,
		Source:   source,
		LoadedAt: loadedAt,
		Series:   series,
		byPlayer: byPlayer,
	}
}

// Players returns all player names in sorted order.
func (d *Dataset) Players() []string {
	names := make([]string, len(d.Series))
	for i, s := range d.Series {
		names[i] = s.Player
	}
	return names
}

// SeriesFor looks up one player's series by name.
func (d *Dataset) SeriesFor(player string) (PlayerSeries, bool) {
	i, ok := d.byPlayer[player]
	if !ok {
		return PlayerSeries{}, false
	}
	return d.Series[i], true
}

// RecordCount returns the total observation count across all players.
func (d *Dataset) RecordCount() int {
	total := 0
	for _, s := range d.Series {
		total += len(s.Records)
	}
	return total
}

// DateSpan reports the earliest and latest observation dates, false when
// the dataset holds no records at all.
func (d *Dataset) DateSpan() (first, last time.Time, ok bool) {
	for _, s := range d.Series {
		for _, rec := range s.Records {
			if !ok || rec.Date.Before(first) {
				first = rec.Date
			}
			if !ok || rec.Date.After(last) {
				last = rec.Date
			}
			ok = true
		}
	}
	return first, last, ok
}
