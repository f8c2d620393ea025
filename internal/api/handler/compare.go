package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/identify"
)

// ComparisonService interface for the service
type ComparisonService interface {
	Compare(ctx context.Context, sourceImage, targetImage []byte, threshold float64) ([]domain.CandidateMatch, error)
}

// CompareHandler handles direct face comparison requests
type CompareHandler struct {
	service ComparisonService
	logger  *slog.Logger
}

func NewCompareHandler(service ComparisonService, logger *slog.Logger) *CompareHandler {
	return &CompareHandler{
		service: service,
		logger:  logger,
	}
}

// CompareResponse response for compare endpoint
type CompareResponse struct {
	MatchFound     bool                    `json:"match_found"`
	BestSimilarity float64                 `json:"best_similarity"`
	Count          int                     `json:"count"`
	Matches        []domain.CandidateMatch `json:"matches"`
}

// Compare POST /v1/faces/compare - compare a source face against a target image
func (h *CompareHandler) Compare(c *fiber.Ctx) error {
	sourceImage, err := extractImage(c, "source_image")
	if err != nil {
		return fmt.Errorf("compare faces: source: %w", err)
	}

	targetImage, err := extractImage(c, "target_image")
	if err != nil {
		return fmt.Errorf("compare faces: target: %w", err)
	}

	threshold, err := parseThreshold(c, identify.DefaultSimilarityThreshold)
	if err != nil {
		return err
	}

	matches, err := h.service.Compare(c.Context(), sourceImage, targetImage, threshold)
	if err != nil {
		return err
	}

	resp := CompareResponse{
		MatchFound: len(matches) > 0,
		Count:      len(matches),
		Matches:    matches,
	}
	if len(matches) > 0 {
		resp.BestSimilarity = matches[0].Similarity
	}

	return c.JSON(resp)
}
