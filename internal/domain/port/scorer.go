package port

import (
	"context"

	"visual-verify/internal/domain/entity"
)

// ShapeScorer сравнивает изображения по ключевым точкам.
// Отсутствующее изображение (nil) даёт проваленный результат, а не ошибку.
type ShapeScorer interface {
	CompareShape(ctx context.Context, reference, test *entity.PixelBuffer) (entity.ShapeResult, error)
}

// ColorScorer сравнивает цветовые распределения изображений.
type ColorScorer interface {
	CompareColor(ctx context.Context, reference, test *entity.PixelBuffer) (entity.ColorResult, error)
}
