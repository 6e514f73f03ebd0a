package container

import (
	"go.uber.org/zap"

	app "visual-verify/internal/application"
	"visual-verify/internal/domain/port"
)

type Container struct {
	Codec               *app.Codec
	SymbolScanner       *app.SymbolScanner
	VerificationService *app.VerificationService
}

// New собирает сервисы приложения. symbols может быть nil — тогда QR не сканируется.
func New(decoder port.ImageDecoder, shape port.ShapeScorer, color port.ColorScorer, symbols port.SymbolDecoder, logger *zap.Logger) *Container {
	codec := app.NewCodec(decoder, logger)
	scanner := app.NewSymbolScanner(symbols, logger)
	verification := app.NewVerificationService(codec, shape, color, scanner, logger)

	return &Container{
		Codec:               codec,
		SymbolScanner:       scanner,
		VerificationService: verification,
	}
}
