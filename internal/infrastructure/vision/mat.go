//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"visual-verify/internal/domain/entity"
)

// toMat оборачивает BGR-буфер в gocv.Mat. Буфер должен жить, пока Mat открыт.
func toMat(img *entity.PixelBuffer) (gocv.Mat, error) {
	if img == nil {
		return gocv.NewMat(), errors.New("empty image")
	}
	// OpenCV читает ровно rows*cols*3 байт, короткий буфер недопустим
	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) != img.Width*img.Height*3 {
		return gocv.NewMat(), fmt.Errorf("malformed image %dx%d with %d bytes", img.Width, img.Height, len(img.Pix))
	}
	mat, err := gocv.NewMatFromBytes(img.Height, img.Width, gocv.MatTypeCV8UC3, img.Pix)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("wrap pixels: %w", err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.NewMat(), errors.New("empty image")
	}
	return mat, nil
}

// fromMat копирует 3-канальный Mat в PixelBuffer.
func fromMat(mat gocv.Mat) (*entity.PixelBuffer, error) {
	if mat.Empty() {
		return nil, errors.New("empty image")
	}
	if mat.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("unexpected mat type %v", mat.Type())
	}
	return entity.NewPixelBuffer(mat.Cols(), mat.Rows(), mat.ToBytes())
}
