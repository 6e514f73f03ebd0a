package app

import (
	"encoding/base64"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"visual-verify/internal/domain/entity"
	"visual-verify/internal/domain/port"
)

// Codec превращает строку из запроса (base64, возможно с data-URI префиксом) в изображение.
// Любая ошибка сводится к nil: отсутствие изображения — нормальное состояние.
type Codec struct {
	decoder port.ImageDecoder
	logger  *zap.Logger
}

// NewCodec создаёт адаптер поверх декодера изображений.
func NewCodec(decoder port.ImageDecoder, logger *zap.Logger) *Codec {
	return &Codec{decoder: decoder, logger: logger}
}

// Decode возвращает изображение или nil, если строка пустая или не разбирается.
func (c *Codec) Decode(encoded string) *entity.PixelBuffer {
	if encoded == "" {
		return nil
	}

	// Отрезаем "data:image/png;base64," и подобные префиксы.
	if i := strings.IndexByte(encoded, ','); i >= 0 {
		encoded = encoded[i+1:]
	}

	raw, err := decodeBase64(encoded)
	if err != nil {
		c.logger.Debug("image is not valid base64", zap.Error(err))
		return nil
	}

	img, err := c.decoder.Decode(raw)
	if err != nil || img == nil {
		c.logger.Debug("image bytes could not be decoded", zap.Error(err), zap.Int("bytes", len(raw)))
		return nil
	}
	return img
}

// decodeBase64 принимает стандартный алфавит, с выравниванием и без, пробелы игнорируются.
func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	raw, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return raw, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "=")); rawErr == nil {
		return raw, nil
	}
	return nil, err
}
