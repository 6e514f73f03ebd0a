package port

import "visual-verify/internal/domain/entity"

// SymbolDecoder интерфейс бэкенда распознавания QR-кодов
type SymbolDecoder interface {
	// Name возвращает имя бэкенда для логов
	Name() string

	// DecodeAll возвращает тексты найденных кодов в порядке бэкенда.
	// Пустой срез без ошибки означает, что кодов на изображении нет.
	DecodeAll(img *entity.PixelBuffer) ([]string, error)
}
