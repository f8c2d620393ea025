package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

// IdentificationService interface for the service
type IdentificationService interface {
	Identify(ctx context.Context, sourceImage []byte, threshold float64) (*domain.IdentificationReport, error)
	IdentifyFromSession(ctx context.Context, sessionID string, threshold float64) (*domain.IdentificationReport, error)
}

// IdentifyHandler handles identification requests
type IdentifyHandler struct {
	service IdentificationService
	logger  *slog.Logger
}

func NewIdentifyHandler(service IdentificationService, logger *slog.Logger) *IdentifyHandler {
	return &IdentifyHandler{
		service: service,
		logger:  logger,
	}
}

// Identify POST /v1/identify - identify a person against registered references.
// The probe is either an uploaded image or the reference frame of a finished
// liveness session (session_id form field); session_id takes precedence.
func (h *IdentifyHandler) Identify(c *fiber.Ctx) error {
	threshold, err := parseThreshold(c, 0)
	if err != nil {
		return err
	}

	if sessionID := strings.TrimSpace(c.FormValue("session_id")); sessionID != "" {
		report, err := h.service.IdentifyFromSession(c.Context(), sessionID, threshold)
		if err != nil {
			return err
		}
		return c.JSON(report)
	}

	sourceImage, err := extractImage(c, "image")
	if err != nil {
		return fmt.Errorf("identify: %w", err)
	}

	report, err := h.service.Identify(c.Context(), sourceImage, threshold)
	if err != nil {
		return err
	}

	return c.JSON(report)
}
