package app

import "visual-verify/internal/domain/entity"

// Aggregate выносит итоговое решение.
// Распознанный QR-код подтверждает совпадение сам по себе,
// визуальные проверки — только если прошли обе.
func Aggregate(shapeOK, colorOK, symbolFound bool) entity.Verdict {
	if symbolFound {
		return entity.VerdictMatch
	}
	if shapeOK && colorOK {
		return entity.VerdictMatch
	}
	return entity.VerdictMismatch
}
