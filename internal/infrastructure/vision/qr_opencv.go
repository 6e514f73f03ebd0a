//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"visual-verify/internal/domain/entity"
	"visual-verify/internal/domain/port"
)

// OpenCVQRDecoder распознаёт QR-коды детектором OpenCV.
type OpenCVQRDecoder struct{}

func newOpenCVQRDecoder() (*OpenCVQRDecoder, error) {
	// Убеждаемся, что модуль objdetect доступен.
	detector := gocv.NewQRCodeDetector()
	detector.Close()
	return &OpenCVQRDecoder{}, nil
}

func (d *OpenCVQRDecoder) Name() string {
	return BackendOpenCV
}

// DecodeAll возвращает все распознанные коды; детектор создаётся на каждый вызов.
// Если мульти-поиск ничего не дал, пробуем найти одиночный код.
func (d *OpenCVQRDecoder) DecodeAll(img *entity.PixelBuffer) ([]string, error) {
	mat, err := toMat(img)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	detector := gocv.NewQRCodeDetector()
	defer detector.Close()

	points := gocv.NewMat()
	defer points.Close()

	var decoded []string
	var straight []gocv.Mat
	detector.DetectAndDecodeMulti(mat, &decoded, &points, &straight)
	for _, m := range straight {
		m.Close()
	}

	payloads := make([]string, 0, len(decoded))
	for _, text := range decoded {
		// пустая строка — код найден, но не прочитан
		if text != "" {
			payloads = append(payloads, text)
		}
	}
	if len(payloads) > 0 {
		return payloads, nil
	}

	single := gocv.NewMat()
	defer single.Close()
	if text := detector.DetectAndDecode(mat, &points, &single); text != "" {
		return []string{text}, nil
	}
	return nil, nil
}

// Проверка реализации интерфейса
var _ port.SymbolDecoder = (*OpenCVQRDecoder)(nil)
