//go:build gocv
// +build gocv

package vision

import (
	"errors"

	"gocv.io/x/gocv"

	"visual-verify/internal/domain/entity"
	"visual-verify/internal/domain/port"
)

// ImageDecoder декодирует изображения средствами OpenCV.
type ImageDecoder struct{}

// NewImageDecoder создаёт декодер на базе gocv.IMDecode.
func NewImageDecoder() *ImageDecoder {
	return &ImageDecoder{}
}

// Decode превращает байты файла в BGR-буфер.
func (d *ImageDecoder) Decode(data []byte) (*entity.PixelBuffer, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}
	mat, err := decodeToMat(data)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	return fromMat(mat)
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

// Проверка реализации интерфейса
var _ port.ImageDecoder = (*ImageDecoder)(nil)
