package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/geometry"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/provider"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/provider/rekognition"
)

// createSessionAttempts bounds retries against the liveness backend. The
// first retry usually absorbs transient throttling; more would just add
// latency for the caller.
const createSessionAttempts = 2

// SessionResults couples the provider's liveness verdict with the local
// geometric consistency analysis of the captured frames.
type SessionResults struct {
	Liveness    *domain.LivenessResult     `json:"liveness"`
	Consistency geometry.ConsistencyReport `json:"consistency"`
}

type LivenessService struct {
	provider provider.LivenessProvider
	logger   *slog.Logger
}

func NewLivenessService(livenessProvider provider.LivenessProvider, logger *slog.Logger) *LivenessService {
	return &LivenessService{
		provider: livenessProvider,
		logger:   logger,
	}
}

// CreateSession starts a liveness session, retrying once on failure.
func (s *LivenessService) CreateSession(ctx context.Context) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= createSessionAttempts; attempt++ {
		sessionID, err := s.provider.CreateSession(ctx)
		if err == nil {
			s.logger.Info("liveness session created",
				slog.String("session_id", sessionID),
				slog.Int("attempt", attempt),
			)
			return sessionID, nil
		}

		lastErr = err
		s.logger.Warn("liveness session creation failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)

		if ctx.Err() != nil {
			break
		}
	}

	return "", domain.ErrSessionCreateFailed.WithError(lastErr)
}

// GetResults fetches a session's outcome and runs the consistency analysis
// over the captured bounding boxes.
func (s *LivenessService) GetResults(ctx context.Context, sessionID string) (*SessionResults, error) {
	result, err := s.provider.GetSessionResults(ctx, sessionID)
	if err != nil {
		if errors.Is(err, rekognition.ErrSessionNotFound) {
			return nil, domain.ErrSessionNotFound.WithError(err)
		}
		return nil, fmt.Errorf("get session results: %w", err)
	}

	var subject *domain.BoundingBox
	if result.ReferenceImage != nil {
		subject = &result.ReferenceImage.Box
	}

	auditBoxes := make([]domain.BoundingBox, 0, len(result.AuditImages))
	for _, img := range result.AuditImages {
		auditBoxes = append(auditBoxes, img.Box)
	}

	s.logger.Info("liveness session results retrieved",
		slog.String("session_id", sessionID),
		slog.String("status", result.Status),
		slog.Bool("is_live", result.IsLive),
		slog.Int("audit_images", len(result.AuditImages)),
	)

	return &SessionResults{
		Liveness:    result,
		Consistency: geometry.AnalyzeConsistency(subject, auditBoxes),
	}, nil
}
