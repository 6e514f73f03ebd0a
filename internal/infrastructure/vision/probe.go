package vision

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"visual-verify/internal/domain/port"
)

const (
	BackendOpenCV = "opencv"
	BackendNone   = "none"
)

// ProbeSymbolBackend один раз при старте выбирает бэкенд распознавания QR.
// Недоступный бэкенд не ошибка: возвращается nil, и сканер будет отвечать «Skipped».
// Ошибка возвращается только для неизвестного имени.
func ProbeSymbolBackend(name string, logger *zap.Logger) (port.SymbolDecoder, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case BackendZXing:
		return NewZXingDecoder(), nil

	case BackendOpenCV:
		decoder, err := newOpenCVQRDecoder()
		if err != nil {
			if errors.Is(err, ErrVisionUnavailable) {
				logger.Warn("qr backend unavailable, qr scanning is skipped", zap.String("backend", name), zap.Error(err))
				return nil, nil
			}
			return nil, fmt.Errorf("probe %s backend: %w", name, err)
		}
		return decoder, nil

	case BackendNone, "":
		logger.Info("qr scanning disabled")
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown qr backend %q", name)
	}
}
