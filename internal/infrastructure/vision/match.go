package vision

import (
	"math"
	"sort"

	"visual-verify/internal/domain/entity"
)

// countGoodMatches считает соответствия с расстоянием строго меньше maxDistance.
// Срез расстояний сортируется на месте.
func countGoodMatches(distances []float64, maxDistance float64) int {
	sort.Float64s(distances)
	return sort.Search(len(distances), func(i int) bool {
		return distances[i] >= maxDistance
	})
}

func shapeResult(good int, cfg ShapeConfig) entity.ShapeResult {
	return entity.ShapeResult{
		Passed:  good >= cfg.MinGoodMatches,
		Matches: good,
		Outcome: entity.OutcomeOK,
	}
}

func missingShapeInput() entity.ShapeResult {
	return entity.ShapeResult{Passed: false, Matches: 0, Outcome: entity.OutcomeNoInput}
}

// shapeUnavailable и colorUnavailable — результаты сборки без OpenCV: проверка провалена,
// решение остаётся за QR-кодом.
func shapeUnavailable() entity.ShapeResult {
	return entity.ShapeResult{Passed: false, Matches: 0, Outcome: entity.OutcomeUnavailable}
}

func colorUnavailable() entity.ColorResult {
	return entity.ColorResult{Passed: false, Score: 0, Outcome: entity.OutcomeUnavailable}
}

func missingColorInput() entity.ColorResult {
	return entity.ColorResult{Passed: false, Score: 0, Outcome: entity.OutcomeNoInput}
}

// colorFallback — результат при сбое расчёта на присутствующих изображениях:
// совпадение принимается.
func colorFallback() entity.ColorResult {
	return entity.ColorResult{Passed: true, Score: 1.0, Outcome: entity.OutcomeFallback}
}

func colorResult(score float64, cfg ColorConfig) entity.ColorResult {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return colorFallback()
	}
	return entity.ColorResult{
		Passed:  score >= cfg.MinCorrelation,
		Score:   score,
		Outcome: entity.OutcomeOK,
	}
}
