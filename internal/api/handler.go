package api

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	app "visual-verify/internal/application"
	"visual-verify/internal/domain/entity"
)

//go:embed web/index.html
var indexHTML []byte

// Verifier проводит одну проверку изображений.
type Verifier interface {
	Verify(ctx context.Context, requestID string, req app.VerificationRequest) (*entity.Report, error)
}

// Options — параметры HTTP-слоя.
type Options struct {
	CORSOrigin   string
	MaxBodyBytes int64
	RateLimitRPS float64 // 0 — без ограничения
	QRBackend    string  // имя бэкенда для /health
}

type predictRequest struct {
	ReferenceImage *string `json:"reference_image"`
	TestImage      *string `json:"test_image"`
	QRImage        *string `json:"qr_image"`
}

type shapeJSON struct {
	Passed bool `json:"passed"`
	Score  int  `json:"score"`
}

type colorJSON struct {
	Passed bool   `json:"passed"`
	Score  string `json:"score"`
}

type qrJSON struct {
	Found bool   `json:"found"`
	Data  string `json:"data"`
}

type predictResults struct {
	Shape shapeJSON `json:"shape"`
	Color colorJSON `json:"color"`
	QR    qrJSON    `json:"qr"`
}

type predictResponse struct {
	Results predictResults `json:"results"`
	Verdict string         `json:"verdict"`
}

// NewRouter собирает gin-движок с middleware и маршрутами.
func NewRouter(verifier Verifier, opts Options, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), accessLog(logger), corsMiddleware(opts.CORSOrigin))
	RegisterRoutes(router, verifier, opts, logger)
	return router
}

// RegisterRoutes регистрирует страницу, проверку здоровья и /predict.
func RegisterRoutes(router *gin.Engine, verifier Verifier, opts Options, logger *zap.Logger) {
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "qr_backend": opts.QRBackend})
	})

	handlers := make([]gin.HandlerFunc, 0, 2)
	if opts.RateLimitRPS > 0 {
		burst := int(opts.RateLimitRPS)
		if burst < 1 {
			burst = 1
		}
		handlers = append(handlers, rateLimit(rate.NewLimiter(rate.Limit(opts.RateLimitRPS), burst)))
	}
	handlers = append(handlers, predictHandler(verifier, opts.MaxBodyBytes, logger))
	router.POST("/predict", handlers...)
}

func predictHandler(verifier Verifier, maxBody int64, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBody > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBody)
		}

		var req predictRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body is too large"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		requestID := c.GetString(requestIDKey)
		report, err := verifier.Verify(c.Request.Context(), requestID, app.VerificationRequest{
			ReferenceImage: deref(req.ReferenceImage),
			TestImage:      deref(req.TestImage),
			QRImage:        deref(req.QRImage),
		})
		if err != nil {
			logger.Error("verification failed", zap.String("request_id", requestID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed", "request_id": requestID})
			return
		}

		c.JSON(http.StatusOK, toResponse(report))
	}
}

func toResponse(report *entity.Report) predictResponse {
	return predictResponse{
		Results: predictResults{
			Shape: shapeJSON{Passed: report.Shape.Passed, Score: report.Shape.Matches},
			Color: colorJSON{Passed: report.Color.Passed, Score: fmt.Sprintf("%.2f", report.Color.Score)},
			QR:    qrJSON{Found: report.Symbol.Found, Data: report.Symbol.Data},
		},
		Verdict: string(report.Verdict),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
