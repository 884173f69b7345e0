package synthetic

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtiwari/recovery-insights/internal/ingest"
	"github.com/vtiwari/recovery-insights/internal/models"
)

func TestGenerateToIsDeterministic(t *testing.T) {
	end := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)

	first := GenerateTo(end, 20, 60)
	second := GenerateTo(end, 20, 60)

	assert.Equal(t, first, second, "same end date and sizing must reproduce the dataset exactly")
}

func TestGenerateToShape(t *testing.T) {
	end := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)
	days := 30

	series := GenerateTo(end, 12, days)
	require.Len(t, series, 12)

	for _, s := range series {
		require.Len(t, s.Records, days, "player %s", s.Player)
		assert.True(t, s.Position.Valid(), "player %s needs a roster position", s.Player)

		assert.Equal(t, end.AddDate(0, 0, -(days-1)), s.Records[0].Date)
		assert.Equal(t, end, s.Records[len(s.Records)-1].Date)

		for i, r := range s.Records {
			assert.GreaterOrEqual(t, r.Score, -1.0)
			assert.LessOrEqual(t, r.Score, 1.0)
			if i > 0 {
				assert.True(t, s.Records[i-1].Date.Before(r.Date), "dates must strictly increase")
			}
		}
	}
}

func TestGenerateClampsSizing(t *testing.T) {
	series := GenerateTo(time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC), 500, 0)

	assert.Len(t, series, len(DefaultSquad()), "oversized requests cap at the squad size")
	for _, s := range series {
		assert.Len(t, s.Records, 1, "non-positive day counts floor at one")
	}
}

func TestGenerateCoversEveryPosition(t *testing.T) {
	series := GenerateTo(time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC), 20, 7)

	byPosition := make(map[models.Position]int)
	for _, s := range series {
		byPosition[s.Position]++
	}
	for _, pos := range models.PositionOrder {
		assert.Greater(t, byPosition[pos], 0, "no %s generated", pos)
	}
}

func TestWriteCSVRoundTripsThroughNormalizer(t *testing.T) {
	end := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)
	series := GenerateTo(end, 5, 14)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, series))

	result, err := ingest.Load(&buf, DefaultRoster())
	require.NoError(t, err)

	assert.Equal(t, ingest.FormatWide, result.Format)
	require.Len(t, result.Series, 5)
	for i, s := range result.Series {
		assert.Len(t, s.Records, 14)
		assert.True(t, s.Position.Valid(), "roster must reattach positions")
		if i > 0 {
			assert.Less(t, result.Series[i-1].Player, s.Player, "series sort by player name")
		}
	}
}
