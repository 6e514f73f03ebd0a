//go:build !gocv
// +build !gocv

package vision

import (
	"visual-verify/internal/domain/entity"
	"visual-verify/internal/domain/port"
)

type OpenCVQRDecoder struct{}

// newOpenCVQRDecoder сообщает, что OpenCV в сборке нет.
func newOpenCVQRDecoder() (*OpenCVQRDecoder, error) {
	return nil, ErrVisionUnavailable
}

func (d *OpenCVQRDecoder) Name() string {
	return BackendOpenCV
}

// DecodeAll возвращает ошибку, если сборка без тега gocv.
func (d *OpenCVQRDecoder) DecodeAll(img *entity.PixelBuffer) ([]string, error) {
	_ = img
	return nil, ErrVisionUnavailable
}

var _ port.SymbolDecoder = (*OpenCVQRDecoder)(nil)
