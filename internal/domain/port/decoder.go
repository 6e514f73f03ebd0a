package port

import "visual-verify/internal/domain/entity"

// ImageDecoder интерфейс декодера изображений
type ImageDecoder interface {
	// Decode разбирает байты файла (формат определяется по содержимому) в BGR-буфер
	Decode(data []byte) (*entity.PixelBuffer, error)
}
