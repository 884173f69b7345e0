package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtiwari/recovery-insights/internal/assessment"
	"github.com/vtiwari/recovery-insights/internal/models"
)

func newTestAnalysisService(t *testing.T) (*AnalysisService, *DatasetService) {
	t.Helper()
	logger := quietLogger()
	datasets := newTestDatasetService()
	scorer := assessment.NewScorer(assessment.DefaultWeights(), assessment.DefaultVariabilityScale)
	analysis := NewAnalysisService(datasets, scorer, NewCacheService(nil, logger), 0, logger)
	return analysis, datasets
}

func TestAnalysisRequiresDataset(t *testing.T) {
	analysis, _ := newTestAnalysisService(t)

	_, err := analysis.PlayerStats("Cole Palmer", models.Window(7), 0.0)
	assert.ErrorIs(t, err, ErrNoDataset)

	_, _, err = analysis.SelectSquad(context.Background(), 0.0, models.DefaultRequirements())
	assert.ErrorIs(t, err, ErrNoDataset)
}

func TestAnalysisUnknownPlayer(t *testing.T) {
	analysis, datasets := newTestAnalysisService(t)
	datasets.LoadSynthetic(0, 0)

	_, err := analysis.PlayerStats("Nobody At All", models.Window(7), 0.0)
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	_, err = analysis.Readiness("Nobody At All", 0.0)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestAnalysisPlayerPipeline(t *testing.T) {
	analysis, datasets := newTestAnalysisService(t)
	ds := datasets.LoadSynthetic(0, 90)
	player := ds.Players()[0]

	stats, err := analysis.PlayerStats(player, models.Window(30), 0.0)
	require.NoError(t, err)
	assert.Equal(t, 30, stats.Days)

	points, err := analysis.Rolling(player, 7, models.Window(30))
	require.NoError(t, err)
	require.Len(t, points, 30)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Rolling, -1.0)
		assert.LessOrEqual(t, p.Rolling, 1.0)
	}

	weeks, err := analysis.Weekly(player, 0.0)
	require.NoError(t, err)
	assert.NotEmpty(t, weeks)

	advice, err := analysis.Workload(player)
	require.NoError(t, err)
	assert.NotEqual(t, models.WorkloadInsufficientData, advice.Progression.Status)
	assert.NotEmpty(t, advice.Recommendations)

	result, err := analysis.Assessment(player, 0.0)
	require.NoError(t, err)
	assert.NotEqual(t, models.RiskStatusUnknown, result.Status)
	assert.NotEmpty(t, result.Recommendations)

	score, err := analysis.Readiness(player, 0.0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score.Score, 0)
	assert.LessOrEqual(t, score.Score, 100)
	assert.NotEqual(t, models.ReadinessUnknown, score.Status)
}

func TestAllReadinessRankOrder(t *testing.T) {
	analysis, datasets := newTestAnalysisService(t)
	datasets.LoadSynthetic(0, 90)

	scores, err := analysis.AllReadiness(0.0)
	require.NoError(t, err)
	require.Len(t, scores, 20)

	for i := 1; i < len(scores); i++ {
		if scores[i-1].Score == scores[i].Score {
			assert.Less(t, scores[i-1].Player, scores[i].Player)
		} else {
			assert.Greater(t, scores[i-1].Score, scores[i].Score)
		}
	}
}

func TestSelectSquadFillsElevenFromFullDataset(t *testing.T) {
	analysis, datasets := newTestAnalysisService(t)
	datasets.LoadSynthetic(0, 90)

	assignment, cached, err := analysis.SelectSquad(context.Background(), 0.0, models.DefaultRequirements())
	require.NoError(t, err)
	assert.False(t, cached, "nil cache never reports a hit")
	assert.Len(t, assignment.StartingXI, 11)
}

func TestPipelineIsIdempotent(t *testing.T) {
	// Identical dataset and parameters must marshal byte-identically;
	// the squad cache key depends on it.
	csv := `date,emboss_baseline_score,player_name
2025-03-01,0.50,Cole Palmer
2025-03-02,0.30,Cole Palmer
2025-03-03,-0.10,Cole Palmer
2025-03-01,0.20,Reece James
2025-03-02,0.40,Reece James
2025-03-01,-0.60,Robert Sanchez
`
	analysis, datasets := newTestAnalysisService(t)
	_, _, err := datasets.LoadFromReader(strings.NewReader(csv), models.DatasetSourceUpload)
	require.NoError(t, err)

	run := func() []byte {
		assignment, _, err := analysis.SelectSquad(context.Background(), 0.0, models.DefaultRequirements())
		require.NoError(t, err)
		out, err := json.Marshal(assignment)
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, run(), run())

	first, err := analysis.AllReadiness(0.0)
	require.NoError(t, err)
	second, err := analysis.AllReadiness(0.0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
