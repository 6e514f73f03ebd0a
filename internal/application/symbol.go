package app

import (
	"fmt"

	"go.uber.org/zap"

	"visual-verify/internal/domain/entity"
	"visual-verify/internal/domain/port"
)

// SymbolScanner ищет QR-код на изображении.
// Бэкенд выбирается один раз при старте; nil означает, что распознавание недоступно.
type SymbolScanner struct {
	backend port.SymbolDecoder
	logger  *zap.Logger
}

// NewSymbolScanner создаёт сканер поверх бэкенда (может быть nil).
func NewSymbolScanner(backend port.SymbolDecoder, logger *zap.Logger) *SymbolScanner {
	return &SymbolScanner{backend: backend, logger: logger}
}

// Available сообщает, подключён ли бэкенд распознавания.
func (s *SymbolScanner) Available() bool {
	return s.backend != nil
}

// BackendName возвращает имя бэкенда или "none".
func (s *SymbolScanner) BackendName() string {
	if s.backend == nil {
		return "none"
	}
	return s.backend.Name()
}

// Scan никогда не возвращает ошибку: сбой бэкенда логируется и отдаётся как "Error".
func (s *SymbolScanner) Scan(img *entity.PixelBuffer) entity.SymbolResult {
	if img == nil {
		return entity.SymbolResult{Found: false, Data: entity.SymbolNoImage}
	}
	if s.backend == nil {
		return entity.SymbolResult{Found: false, Data: entity.SymbolSkipped}
	}

	payloads, err := s.decode(img)
	if err != nil {
		s.logger.Error("QR Error", zap.String("backend", s.backend.Name()), zap.Error(err))
		return entity.SymbolResult{Found: false, Data: entity.SymbolError}
	}
	if len(payloads) == 0 {
		return entity.SymbolResult{Found: false, Data: entity.SymbolNotFound}
	}

	return entity.SymbolResult{Found: true, Data: payloads[0]}
}

func (s *SymbolScanner) decode(img *entity.PixelBuffer) (payloads []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("qr backend panic: %v", r)
		}
	}()
	return s.backend.DecodeAll(img)
}
