package main

import (
	"log"

	"go.uber.org/zap"

	"visual-verify/config"
	"visual-verify/internal/api"
	"visual-verify/internal/container"
	"visual-verify/internal/infrastructure/vision"
	"visual-verify/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// Бэкенд QR определяется один раз и дальше только читается
	symbols, err := vision.ProbeSymbolBackend(cfg.QRBackend, logger)
	if err != nil {
		logger.Fatal("qr backend probe failed", zap.Error(err))
	}
	backendName := vision.BackendNone
	if symbols != nil {
		backendName = symbols.Name()
	}

	shape := vision.NewORBShapeScorer(vision.ShapeConfig{
		MinGoodMatches: cfg.ORBMatchThreshold,
		MaxDistance:    cfg.ORBMaxDistance,
	})
	color := vision.NewHistColorScorer(vision.ColorConfig{
		HueBins:        cfg.HistHueBins,
		SatBins:        cfg.HistSatBins,
		MinCorrelation: cfg.ColorThreshold,
	})

	// Собираем сервисы приложения
	appContainer := container.New(vision.NewImageDecoder(), shape, color, symbols, logger)

	router := api.NewRouter(appContainer.VerificationService, api.Options{
		CORSOrigin:   cfg.CORSOrigin,
		MaxBodyBytes: cfg.MaxBodyBytes,
		RateLimitRPS: cfg.RateLimitRPS,
		QRBackend:    backendName,
	}, logger)

	server := api.NewServer(cfg.HTTPAddr, router)

	logger.Info("visual verification service listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("qr_backend", backendName),
	)
	if err := api.Serve(server, cfg.ShutdownTimeout, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
