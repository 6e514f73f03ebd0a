package vision

import (
	"errors"
	"fmt"

	"github.com/makiuchi-d/gozxing"
	multiqr "github.com/makiuchi-d/gozxing/multi/qrcode"
	"github.com/makiuchi-d/gozxing/qrcode"

	"visual-verify/internal/domain/entity"
	"visual-verify/internal/domain/port"
)

// BackendZXing — имя чистого Go-бэкенда распознавания QR.
const BackendZXing = "zxing"

// ZXingDecoder распознаёт QR-коды через gozxing.
type ZXingDecoder struct {
	hints map[gozxing.DecodeHintType]interface{}
}

// NewZXingDecoder создаёт декодер с режимом TRY_HARDER.
func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

func (d *ZXingDecoder) Name() string {
	return BackendZXing
}

// DecodeAll возвращает тексты всех распознанных кодов в порядке обнаружения.
// Если мульти-детектор ничего не нашёл, изображение проверяется одиночным ридером.
// Ошибки распознавания (код не найден, не сошлась контрольная сумма) означают «кода нет».
func (d *ZXingDecoder) DecodeAll(img *entity.PixelBuffer) ([]string, error) {
	if img == nil {
		return nil, errors.New("empty image")
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("binarize image: %w", err)
	}

	results, err := multiqr.NewQRCodeMultiReader().DecodeMultiple(bmp, d.hints)
	if err != nil && !isReaderException(err) {
		return nil, fmt.Errorf("decode qr codes: %w", err)
	}
	if len(results) > 0 {
		payloads := make([]string, 0, len(results))
		for _, r := range results {
			payloads = append(payloads, r.GetText())
		}
		return payloads, nil
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, d.hints)
	if err != nil {
		if isReaderException(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode qr: %w", err)
	}
	return []string{result.GetText()}, nil
}

func isReaderException(err error) bool {
	var readerErr gozxing.ReaderException
	return errors.As(err, &readerErr)
}

// Проверка реализации интерфейса
var _ port.SymbolDecoder = (*ZXingDecoder)(nil)
