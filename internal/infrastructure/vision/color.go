//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"

	"gocv.io/x/gocv"

	"visual-verify/internal/domain/entity"
	"visual-verify/internal/domain/port"
)

// HistColorScorer сравнивает гистограммы тон×насыщенность в пространстве HSV.
type HistColorScorer struct {
	cfg ColorConfig
}

// NewHistColorScorer создаёт сравнение цвета с заданными корзинами и порогом.
func NewHistColorScorer(cfg ColorConfig) *HistColorScorer {
	return &HistColorScorer{cfg: cfg}
}

// CompareColor возвращает корреляцию нормированных гистограмм.
// Если расчёт на присутствующих изображениях не удался, совпадение принимается.
func (s *HistColorScorer) CompareColor(ctx context.Context, reference, test *entity.PixelBuffer) (entity.ColorResult, error) {
	_ = ctx
	if reference == nil || test == nil {
		return missingColorInput(), nil
	}

	refHist, err := s.histogram(reference)
	if err != nil {
		return colorFallback(), nil
	}
	defer refHist.Close()

	testHist, err := s.histogram(test)
	if err != nil {
		return colorFallback(), nil
	}
	defer testHist.Close()

	score := float64(gocv.CompareHist(refHist, testHist, gocv.HistCmpCorrel))
	return colorResult(score, s.cfg), nil
}

// histogram строит L2-нормированную гистограмму по каналам H (0..180) и S (0..256).
func (s *HistColorScorer) histogram(img *entity.PixelBuffer) (gocv.Mat, error) {
	mat, err := toMat(img)
	if err != nil {
		return gocv.NewMat(), err
	}
	defer mat.Close()

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(mat, &hsv, gocv.ColorBGRToHSV)
	if hsv.Empty() {
		return gocv.NewMat(), errors.New("hsv conversion failed")
	}

	mask := gocv.NewMat()
	defer mask.Close()

	hist := gocv.NewMat()
	gocv.CalcHist(
		[]gocv.Mat{hsv},
		[]int{0, 1},
		mask,
		&hist,
		[]int{s.cfg.HueBins, s.cfg.SatBins},
		[]float64{0, 180, 0, 256},
		false,
	)
	if hist.Empty() {
		hist.Close()
		return gocv.NewMat(), errors.New("empty histogram")
	}

	gocv.Normalize(hist, &hist, 1, 0, gocv.NormL2)
	return hist, nil
}

// Проверка реализации интерфейса
var _ port.ColorScorer = (*HistColorScorer)(nil)
