package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/identify"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/provider"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/provider/rekognition"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/repository"
)

type ReferenceStoreInterface interface {
	Add(ctx context.Context, ref *domain.ReferenceIdentity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReferenceIdentity, error)
	List(ctx context.Context) ([]domain.ReferenceIdentity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type AttemptRepositoryInterface interface {
	Create(ctx context.Context, attempt *domain.IdentificationAttempt) error
}

// Interface compatibility with the repository implementations
var (
	_ ReferenceStoreInterface    = (*repository.ReferenceStore)(nil)
	_ AttemptRepositoryInterface = (*repository.AttemptRepository)(nil)
)

type IdentificationService struct {
	comparer    provider.FaceComparer
	liveness    *LivenessService
	refs        ReferenceStoreInterface
	attemptRepo AttemptRepositoryInterface
	logger      *slog.Logger
	threshold   float64
}

func NewIdentificationService(
	comparer provider.FaceComparer,
	liveness *LivenessService,
	refs ReferenceStoreInterface,
	attemptRepo AttemptRepositoryInterface,
	logger *slog.Logger,
) *IdentificationService {
	return &IdentificationService{
		comparer:    comparer,
		liveness:    liveness,
		refs:        refs,
		attemptRepo: attemptRepo,
		logger:      logger,
		threshold:   identify.DefaultSimilarityThreshold,
	}
}

func (s *IdentificationService) WithThreshold(threshold float64) *IdentificationService {
	s.threshold = threshold
	return s
}

func validateThreshold(threshold float64) error {
	if threshold < 0 || threshold > 100 {
		return domain.ErrInvalidThreshold
	}
	return nil
}

// Compare runs a single face comparison between two images
func (s *IdentificationService) Compare(ctx context.Context, sourceImage, targetImage []byte, threshold float64) ([]domain.CandidateMatch, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}

	matches, err := s.comparer.CompareFaces(ctx, sourceImage, targetImage, threshold)
	if err != nil {
		return nil, mapComparisonError(err)
	}

	return matches, nil
}

// RegisterReference adds a new reference identity to the store
func (s *IdentificationService) RegisterReference(ctx context.Context, name string, image []byte) (*domain.ReferenceIdentity, error) {
	ref := &domain.ReferenceIdentity{
		Name:      name,
		Image:     image,
		CreatedAt: time.Now(),
	}

	if err := s.refs.Add(ctx, ref); err != nil {
		return nil, err
	}

	s.logger.Info("reference registered",
		slog.String("reference_id", ref.ID.String()),
		slog.String("name", ref.Name),
	)

	return ref, nil
}

// ListReferences returns all registered references in registration order
func (s *IdentificationService) ListReferences(ctx context.Context) ([]domain.ReferenceIdentity, error) {
	return s.refs.List(ctx)
}

// DeleteReference removes a reference identity
func (s *IdentificationService) DeleteReference(ctx context.Context, id uuid.UUID) error {
	if err := s.refs.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("reference deleted", slog.String("reference_id", id.String()))
	return nil
}

// Identify compares sourceImage against every registered reference, in
// registration order, and assembles the identification report. A failure
// against one reference does not abort the rest; it is recorded as a failed
// outcome in the report. A threshold of 0 selects the service default.
func (s *IdentificationService) Identify(ctx context.Context, sourceImage []byte, threshold float64) (*domain.IdentificationReport, error) {
	return s.identify(ctx, sourceImage, nil, threshold)
}

// IdentifyFromSession identifies the person captured by a finished liveness
// session, using the session's reference image as the probe.
func (s *IdentificationService) IdentifyFromSession(ctx context.Context, sessionID string, threshold float64) (*domain.IdentificationReport, error) {
	results, err := s.liveness.GetResults(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	liveness := results.Liveness
	if liveness.ReferenceImage == nil || len(liveness.ReferenceImage.Bytes) == 0 {
		return nil, domain.ErrNoReferenceImage
	}

	return s.identify(ctx, liveness.ReferenceImage.Bytes, liveness, threshold)
}

func (s *IdentificationService) identify(ctx context.Context, sourceImage []byte, liveness *domain.LivenessResult, threshold float64) (*domain.IdentificationReport, error) {
	start := time.Now()

	if threshold == 0 {
		threshold = s.threshold
	}
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}

	references, err := s.refs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	if len(references) == 0 {
		return nil, domain.ErrNoReferences
	}

	outcomes := make([]domain.ComparisonOutcome, 0, len(references))
	for _, ref := range references {
		matches, err := s.comparer.CompareFaces(ctx, sourceImage, ref.Image, threshold)
		if err != nil {
			s.logger.Warn("comparison failed",
				slog.String("reference", ref.Name),
				slog.String("error", err.Error()),
			)
			outcomes = append(outcomes, domain.FailedComparison(ref, err))
			continue
		}
		outcomes = append(outcomes, domain.NewComparisonOutcome(ref, matches))
	}

	report := identify.BuildReportWithThreshold(liveness, outcomes, threshold)

	s.recordAttempt(ctx, &report, liveness, time.Since(start))

	return &report, nil
}

// recordAttempt persists the attempt for auditing. Failure to record never
// fails the identification itself.
func (s *IdentificationService) recordAttempt(ctx context.Context, report *domain.IdentificationReport, liveness *domain.LivenessResult, elapsed time.Duration) {
	attempt := &domain.IdentificationAttempt{
		Identified:            report.IsIdentified,
		TotalComparisons:      report.TotalComparisons,
		SuccessfulComparisons: report.SuccessfulComparisons,
		LatencyMs:             elapsed.Milliseconds(),
	}

	if liveness != nil {
		attempt.SessionID = liveness.SessionID
	}
	if report.BestMatch != nil {
		attempt.BestMatchName = report.BestMatch.ReferenceName
		attempt.BestSimilarity = report.BestMatch.TopSimilarity()
	}

	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		s.logger.Warn("failed to record identification attempt",
			slog.String("error", err.Error()),
		)
	}
}

func mapComparisonError(err error) error {
	switch {
	case errors.Is(err, rekognition.ErrNoFaceDetected):
		return domain.ErrNoFaceDetected.WithError(err)
	case errors.Is(err, rekognition.ErrInvalidImage):
		return domain.ErrInvalidImage.WithError(err)
	}

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return domain.ErrInternal.WithError(err)
}
