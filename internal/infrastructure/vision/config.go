package vision

import "errors"

// ErrVisionUnavailable возвращается, если сборка сделана без тега gocv.
var ErrVisionUnavailable = errors.New("gocv build tag is not enabled")

// ShapeConfig — пороги сравнения по ключевым точкам ORB.
type ShapeConfig struct {
	MinGoodMatches int     // сколько надёжных соответствий нужно для прохождения
	MaxDistance    float64 // соответствие надёжно, если расстояние Хэмминга строго меньше
}

// DefaultShapeConfig возвращает пороги по умолчанию: 15 соответствий с расстоянием < 50.
func DefaultShapeConfig() ShapeConfig {
	return ShapeConfig{
		MinGoodMatches: 15,
		MaxDistance:    50,
	}
}

// ColorConfig — параметры гистограммы тон×насыщенность и порог корреляции.
type ColorConfig struct {
	HueBins        int
	SatBins        int
	MinCorrelation float64
}

// DefaultColorConfig возвращает гистограмму 50×60 и порог корреляции 0.75.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		HueBins:        50,
		SatBins:        60,
		MinCorrelation: 0.75,
	}
}
