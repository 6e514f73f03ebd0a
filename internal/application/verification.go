package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"visual-verify/internal/domain/entity"
	"visual-verify/internal/domain/port"
	"visual-verify/internal/logging"
)

// VerificationRequest — три изображения в том виде, в каком они пришли в запросе.
type VerificationRequest struct {
	ReferenceImage string
	TestImage      string
	QRImage        string
}

type VerificationService struct {
	codec   *Codec
	shape   port.ShapeScorer
	color   port.ColorScorer
	symbols *SymbolScanner
	logger  *zap.Logger
}

// NewVerificationService создаёт сервис, который проводит одну проверку от декодирования до вердикта.
func NewVerificationService(codec *Codec, shape port.ShapeScorer, color port.ColorScorer, symbols *SymbolScanner, logger *zap.Logger) *VerificationService {
	return &VerificationService{
		codec:   codec,
		shape:   shape,
		color:   color,
		symbols: symbols,
		logger:  logger.Named("verification"),
	}
}

// Verify сравнивает эталон с тестовым изображением, сканирует QR и выносит вердикт.
// Ошибка возвращается только при непредвиденном сбое сравнения.
func (s *VerificationService) Verify(ctx context.Context, requestID string, req VerificationRequest) (*entity.Report, error) {
	if s.shape == nil || s.color == nil {
		return nil, errors.New("scorers are not configured")
	}
	opLogger := logging.WithOperation(s.logger, "verification.verify", requestID)

	reference := s.codec.Decode(req.ReferenceImage)
	test := s.codec.Decode(req.TestImage)
	qr := s.codec.Decode(req.QRImage)

	shape, err := s.shape.CompareShape(ctx, reference, test)
	if err != nil {
		wrapped := logging.NewOperationError("verification.compare_shape", requestID, err)
		opLogger.Error("shape comparison failed", zap.Error(wrapped))
		return nil, wrapped
	}

	if shape.Outcome == entity.OutcomeUnavailable {
		opLogger.Warn("shape comparison unavailable in this build")
	}

	color, err := s.color.CompareColor(ctx, reference, test)
	if err != nil {
		wrapped := logging.NewOperationError("verification.compare_color", requestID, err)
		opLogger.Error("color comparison failed", zap.Error(wrapped))
		return nil, wrapped
	}
	if color.Outcome == entity.OutcomeFallback {
		opLogger.Warn("color comparison failed, assuming match")
	}
	if color.Outcome == entity.OutcomeUnavailable {
		opLogger.Warn("color comparison unavailable in this build")
	}

	symbol := s.symbols.Scan(qr)
	verdict := Aggregate(shape.Passed, color.Passed, symbol.Found)

	opLogger.Info("verification completed",
		zap.Bool("reference_present", reference != nil),
		zap.Bool("test_present", test != nil),
		zap.Bool("qr_present", qr != nil),
		zap.Int("shape_matches", shape.Matches),
		zap.Float64("color_score", color.Score),
		zap.Bool("qr_found", symbol.Found),
		zap.String("verdict", string(verdict)),
	)

	return &entity.Report{
		Shape:   shape,
		Color:   color,
		Symbol:  symbol,
		Verdict: verdict,
	}, nil
}
