package services

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtiwari/recovery-insights/internal/ingest"
	"github.com/vtiwari/recovery-insights/internal/models"
	"github.com/vtiwari/recovery-insights/internal/synthetic"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestDatasetService() *DatasetService {
	return NewDatasetService(synthetic.DefaultRoster(), 20, 30, quietLogger())
}

const wideCSV = `date,emboss_baseline_score,player_name
2025-03-01,0.50,Cole Palmer
2025-03-02,0.30,Cole Palmer
2025-03-01,0.10,Reece James
`

func TestLoadFromReader(t *testing.T) {
	svc := newTestDatasetService()
	require.Nil(t, svc.Current())

	ds, warn, err := svc.LoadFromReader(strings.NewReader(wideCSV), models.DatasetSourceUpload)
	require.NoError(t, err)
	require.Nil(t, warn)

	assert.NotEmpty(t, ds.Version)
	assert.Equal(t, models.DatasetSourceUpload, ds.Source)
	assert.Equal(t, []string{"Cole Palmer", "Reece James"}, ds.Players())
	assert.Equal(t, 3, ds.RecordCount())
	assert.Same(t, ds, svc.Current())

	series, ok := svc.SeriesFor("Cole Palmer")
	require.True(t, ok)
	assert.Equal(t, models.PositionFWD, series.Position, "roster positions attach at ingestion")
}

func TestLoadFromReaderFormatErrorFallsBackToSynthetic(t *testing.T) {
	svc := newTestDatasetService()

	ds, warn, err := svc.LoadFromReader(strings.NewReader("a,b,c\n1,2,3\n"), models.DatasetSourceUpload)
	require.NoError(t, err, "format errors are recoverable, never fatal")
	require.NotNil(t, warn)
	assert.True(t, ingest.IsFormatError(warn))
	assert.Equal(t, []string{"a", "b", "c"}, warn.Header, "the warning carries the rejected header")

	assert.Equal(t, models.DatasetSourceSynthetic, ds.Source)
	assert.Len(t, ds.Series, 20)
	assert.Same(t, ds, svc.Current(), "the synthetic substitute becomes the active dataset")
}

func TestLoadFromFileMissingFileGeneratesSynthetic(t *testing.T) {
	svc := newTestDatasetService()

	ds, err := svc.LoadFromFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	assert.Equal(t, models.DatasetSourceSynthetic, ds.Source)
	assert.Len(t, ds.Series, 20)
}

func TestLoadSwapsVersion(t *testing.T) {
	svc := newTestDatasetService()

	first, _, err := svc.LoadFromReader(strings.NewReader(wideCSV), models.DatasetSourceUpload)
	require.NoError(t, err)
	second, _, err := svc.LoadFromReader(strings.NewReader(wideCSV), models.DatasetSourceUpload)
	require.NoError(t, err)

	assert.NotEqual(t, first.Version, second.Version, "every load mints a fresh version")
	assert.Same(t, second, svc.Current())
}

func TestLoadSyntheticSizing(t *testing.T) {
	svc := newTestDatasetService()

	ds := svc.LoadSynthetic(8, 14)
	assert.Len(t, ds.Series, 8)
	for _, s := range ds.Series {
		assert.Len(t, s.Records, 14)
	}

	// Zero arguments use the configured defaults.
	ds = svc.LoadSynthetic(0, 0)
	assert.Len(t, ds.Series, 20)
}
