package app

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/require"

	"visual-verify/internal/domain/entity"
)

// stubShapeScorer проходит, если оба изображения есть и совпадают побайтно.
type stubShapeScorer struct {
	err   error
	calls int
}

func (s *stubShapeScorer) CompareShape(ctx context.Context, reference, test *entity.PixelBuffer) (entity.ShapeResult, error) {
	s.calls++
	if s.err != nil {
		return entity.ShapeResult{}, s.err
	}
	if reference == nil || test == nil {
		return entity.ShapeResult{Outcome: entity.OutcomeNoInput}, nil
	}
	if samePixels(reference, test) {
		return entity.ShapeResult{Passed: true, Matches: 120, Outcome: entity.OutcomeOK}, nil
	}
	return entity.ShapeResult{Passed: false, Matches: 2, Outcome: entity.OutcomeOK}, nil
}

type stubColorScorer struct {
	err      error
	fallback bool
}

func (s *stubColorScorer) CompareColor(ctx context.Context, reference, test *entity.PixelBuffer) (entity.ColorResult, error) {
	if s.err != nil {
		return entity.ColorResult{}, s.err
	}
	if reference == nil || test == nil {
		return entity.ColorResult{Outcome: entity.OutcomeNoInput}, nil
	}
	if s.fallback {
		return entity.ColorResult{Passed: true, Score: 1, Outcome: entity.OutcomeFallback}, nil
	}
	if samePixels(reference, test) {
		return entity.ColorResult{Passed: true, Score: 1, Outcome: entity.OutcomeOK}, nil
	}
	return entity.ColorResult{Passed: false, Score: 0.12, Outcome: entity.OutcomeOK}, nil
}

type stubSymbolDecoder struct {
	payloads []string
	err      error
	panicMsg string
	calls    int
}

func (s *stubSymbolDecoder) Name() string { return "stub" }

func (s *stubSymbolDecoder) DecodeAll(img *entity.PixelBuffer) ([]string, error) {
	s.calls++
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.payloads, s.err
}

// pngDecoder — минимальный декодер PNG для тестов сервиса.
type pngDecoder struct{}

func (pngDecoder) Decode(data []byte) (*entity.PixelBuffer, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	buf := entity.FromImage(img)
	if buf == nil {
		return nil, errors.New("empty image")
	}
	return buf, nil
}

func samePixels(a, b *entity.PixelBuffer) bool {
	return a.Width == b.Width && a.Height == b.Height && bytes.Equal(a.Pix, b.Pix)
}

func noiseImage(w, h int, seed int64) *image.RGBA {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rnd.Read(img.Pix)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func qrImage(t *testing.T, text string) image.Image {
	t.Helper()
	matrix, err := qrcode.NewQRCodeWriter().Encode(text, gozxing.BarcodeFormat_QR_CODE, 300, 300, nil)
	require.NoError(t, err)
	return matrix
}

func dataURI(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

var noColor = color.RGBA{A: 255}
