//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"

	"visual-verify/internal/domain/entity"
	"visual-verify/internal/domain/port"
)

// ORBShapeScorer сравнивает изображения по бинарным дескрипторам ORB.
type ORBShapeScorer struct {
	cfg ShapeConfig
}

// NewORBShapeScorer создаёт сравнение по ключевым точкам с заданными порогами.
func NewORBShapeScorer(cfg ShapeConfig) *ORBShapeScorer {
	return &ORBShapeScorer{cfg: cfg}
}

// CompareShape считает взаимно ближайшие пары дескрипторов с малым расстоянием Хэмминга.
func (s *ORBShapeScorer) CompareShape(ctx context.Context, reference, test *entity.PixelBuffer) (entity.ShapeResult, error) {
	_ = ctx
	if reference == nil || test == nil {
		return missingShapeInput(), nil
	}

	refMat, err := toMat(reference)
	if err != nil {
		return entity.ShapeResult{}, fmt.Errorf("reference image: %w", err)
	}
	defer refMat.Close()

	testMat, err := toMat(test)
	if err != nil {
		return entity.ShapeResult{}, fmt.Errorf("test image: %w", err)
	}
	defer testMat.Close()

	orb := gocv.NewORB()
	defer orb.Close()

	mask := gocv.NewMat()
	defer mask.Close()

	_, refDesc := orb.DetectAndCompute(refMat, mask)
	defer refDesc.Close()
	_, testDesc := orb.DetectAndCompute(testMat, mask)
	defer testDesc.Close()

	// Нет ключевых точек — сравнивать нечего.
	if refDesc.Empty() || testDesc.Empty() {
		return shapeResult(0, s.cfg), nil
	}

	// crossCheck=true оставляет только взаимно ближайшие пары
	matcher := gocv.NewBFMatcherWithParams(gocv.NormHamming, true)
	defer matcher.Close()

	matches := matcher.Match(refDesc, testDesc)
	distances := make([]float64, len(matches))
	for i, m := range matches {
		distances[i] = float64(m.Distance)
	}

	return shapeResult(countGoodMatches(distances, s.cfg.MaxDistance), s.cfg), nil
}

// Проверка реализации интерфейса
var _ port.ShapeScorer = (*ORBShapeScorer)(nil)
