//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"visual-verify/internal/domain/entity"
)

func TestImageDecoder_RoundTripKeepsSize(t *testing.T) {
	decoder := NewImageDecoder()
	src := blockNoise(64, 40, 1)

	buf, err := decoder.Decode(encodePNG(t, src))
	require.NoError(t, err)
	require.Equal(t, 64, buf.Width)
	require.Equal(t, 40, buf.Height)
	require.Len(t, buf.Pix, 64*40*3)

	buf, err = decoder.Decode(encodeJPEG(t, src))
	require.NoError(t, err)
	require.Equal(t, 64, buf.Width)
	require.Equal(t, 40, buf.Height)
}

func TestImageDecoder_PNGIsLossless(t *testing.T) {
	src := solid(4, 4, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	buf, err := NewImageDecoder().Decode(encodePNG(t, src))
	require.NoError(t, err)
	require.Equal(t, []byte{3, 2, 1}, buf.Pix[:3])
}

func TestImageDecoder_RejectsGarbage(t *testing.T) {
	_, err := NewImageDecoder().Decode([]byte("definitely not an image"))
	require.Error(t, err)

	_, err = NewImageDecoder().Decode(nil)
	require.Error(t, err)
}

func TestStubScorers(t *testing.T) {
	ctx := context.Background()
	img := entity.FromImage(blockNoise(16, 16, 2))

	shape, err := NewORBShapeScorer(DefaultShapeConfig()).CompareShape(ctx, nil, img)
	require.NoError(t, err)
	require.Equal(t, entity.OutcomeNoInput, shape.Outcome)

	shape, err = NewORBShapeScorer(DefaultShapeConfig()).CompareShape(ctx, img, img)
	require.NoError(t, err)
	require.False(t, shape.Passed)
	require.Equal(t, entity.OutcomeUnavailable, shape.Outcome)

	colorRes, err := NewHistColorScorer(DefaultColorConfig()).CompareColor(ctx, img, nil)
	require.NoError(t, err)
	require.False(t, colorRes.Passed)

	colorRes, err = NewHistColorScorer(DefaultColorConfig()).CompareColor(ctx, img, img)
	require.NoError(t, err)
	require.False(t, colorRes.Passed)
	require.Zero(t, colorRes.Score)
	require.Equal(t, entity.OutcomeUnavailable, colorRes.Outcome)
}

func TestProbeSymbolBackend_OpenCVUnavailable(t *testing.T) {
	decoder, err := ProbeSymbolBackend(BackendOpenCV, zap.NewNop())
	require.NoError(t, err)
	require.Nil(t, decoder)
}
