package vision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"visual-verify/internal/domain/entity"
)

func TestCountGoodMatches_StrictCutoff(t *testing.T) {
	distances := []float64{70, 12, 50, 0, 49.5}
	require.Equal(t, 3, countGoodMatches(distances, 50))
	require.Equal(t, 0, countGoodMatches(nil, 50))
}

func TestShapeResult_Threshold(t *testing.T) {
	cfg := DefaultShapeConfig()
	require.False(t, shapeResult(14, cfg).Passed)

	res := shapeResult(15, cfg)
	require.True(t, res.Passed)
	require.Equal(t, 15, res.Matches)
	require.Equal(t, entity.OutcomeOK, res.Outcome)
}

func TestColorResult_Threshold(t *testing.T) {
	cfg := DefaultColorConfig()
	require.True(t, colorResult(0.75, cfg).Passed)
	require.False(t, colorResult(0.7499, cfg).Passed)
	require.False(t, colorResult(-1, cfg).Passed)
}

func TestColorResult_FailsOpenOnNaN(t *testing.T) {
	cfg := DefaultColorConfig()
	for _, score := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		res := colorResult(score, cfg)
		require.True(t, res.Passed)
		require.Equal(t, 1.0, res.Score)
		require.Equal(t, entity.OutcomeFallback, res.Outcome)
	}
}

func TestMissingInputFailsClosed(t *testing.T) {
	shape := missingShapeInput()
	require.False(t, shape.Passed)
	require.Zero(t, shape.Matches)

	require.False(t, shapeUnavailable().Passed)
	require.Equal(t, entity.OutcomeUnavailable, colorUnavailable().Outcome)

	color := missingColorInput()
	require.False(t, color.Passed)
	require.Zero(t, color.Score)
	require.Equal(t, entity.OutcomeNoInput, color.Outcome)
}
