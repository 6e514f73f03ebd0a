//go:build !gocv
// +build !gocv

package vision

import (
	"context"

	"visual-verify/internal/domain/entity"
	"visual-verify/internal/domain/port"
)

type ORBShapeScorer struct {
	cfg ShapeConfig
}

// NewORBShapeScorer создаёт сравнение-заглушку (без OpenCV).
func NewORBShapeScorer(cfg ShapeConfig) *ORBShapeScorer {
	return &ORBShapeScorer{cfg: cfg}
}

// CompareShape без OpenCV всегда проваливает сравнение.
func (s *ORBShapeScorer) CompareShape(ctx context.Context, reference, test *entity.PixelBuffer) (entity.ShapeResult, error) {
	_ = ctx
	if reference == nil || test == nil {
		return missingShapeInput(), nil
	}
	return shapeUnavailable(), nil
}

type HistColorScorer struct {
	cfg ColorConfig
}

// NewHistColorScorer создаёт сравнение-заглушку (без OpenCV).
func NewHistColorScorer(cfg ColorConfig) *HistColorScorer {
	return &HistColorScorer{cfg: cfg}
}

// CompareColor без OpenCV всегда проваливает сравнение.
func (s *HistColorScorer) CompareColor(ctx context.Context, reference, test *entity.PixelBuffer) (entity.ColorResult, error) {
	_ = ctx
	if reference == nil || test == nil {
		return missingColorInput(), nil
	}
	return colorUnavailable(), nil
}

var (
	_ port.ShapeScorer = (*ORBShapeScorer)(nil)
	_ port.ColorScorer = (*HistColorScorer)(nil)
)
