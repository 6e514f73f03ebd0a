//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"visual-verify/internal/domain/entity"
	"visual-verify/internal/domain/port"
)

// ImageDecoder декодирует изображения без OpenCV (сборка без тега gocv).
type ImageDecoder struct{}

// NewImageDecoder создаёт декодер на базе пакета image.
func NewImageDecoder() *ImageDecoder {
	return &ImageDecoder{}
}

// Decode превращает байты файла в BGR-буфер, формат определяется по сигнатуре.
func (d *ImageDecoder) Decode(data []byte) (*entity.PixelBuffer, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	buf := entity.FromImage(img)
	if buf == nil {
		return nil, errors.New("empty image")
	}
	return buf, nil
}

// Проверка реализации интерфейса
var _ port.ImageDecoder = (*ImageDecoder)(nil)
