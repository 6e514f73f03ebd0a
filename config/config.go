package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	QRBackend       string // zxing, opencv или none
	CORSOrigin      string
	LogLevel        string
	RateLimitRPS    float64 // 0 — без ограничения
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration

	ORBMatchThreshold int
	ORBMaxDistance    float64
	ColorThreshold    float64
	HistHueBins       int
	HistSatBins       int
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:   getEnv("HTTP_ADDR", ":5002"),
		QRBackend:  getEnv("QR_BACKEND", "zxing"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 0); err != nil {
		return nil, err
	}
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", 32<<20); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.ORBMatchThreshold, err = getInt("ORB_MATCH_THRESHOLD", 15); err != nil {
		return nil, err
	}
	if cfg.ORBMaxDistance, err = getFloat("ORB_MAX_DISTANCE", 50); err != nil {
		return nil, err
	}
	if cfg.ColorThreshold, err = getFloat("COLOR_THRESHOLD", 0.75); err != nil {
		return nil, err
	}
	if cfg.HistHueBins, err = getInt("HIST_HUE_BINS", 50); err != nil {
		return nil, err
	}
	if cfg.HistSatBins, err = getInt("HIST_SAT_BINS", 60); err != nil {
		return nil, err
	}

	if cfg.HistHueBins <= 0 || cfg.HistSatBins <= 0 {
		return nil, fmt.Errorf("histogram bins must be positive, got %dx%d", cfg.HistHueBins, cfg.HistSatBins)
	}
	if cfg.RateLimitRPS < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
