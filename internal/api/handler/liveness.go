package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
	"github.com/saturnino-fabrica-de-software/faceproof/internal/service"
)

// LivenessService interface for the service
type LivenessService interface {
	CreateSession(ctx context.Context) (string, error)
	GetResults(ctx context.Context, sessionID string) (*service.SessionResults, error)
}

// LivenessHandler handles liveness session requests
type LivenessHandler struct {
	service LivenessService
	logger  *slog.Logger
}

func NewLivenessHandler(service LivenessService, logger *slog.Logger) *LivenessHandler {
	return &LivenessHandler{
		service: service,
		logger:  logger,
	}
}

// CreateSessionResponse response for session creation
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

// CreateSession POST /v1/liveness/sessions - start a new liveness session
func (h *LivenessHandler) CreateSession(c *fiber.Ctx) error {
	sessionID, err := h.service.CreateSession(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(CreateSessionResponse{
		SessionID: sessionID,
	})
}

// GetResults GET /v1/liveness/sessions/:session_id/results - fetch session outcome
func (h *LivenessHandler) GetResults(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.Params("session_id"))
	if sessionID == "" {
		return domain.ErrValidationFailed.WithError(errors.New("session_id is required"))
	}

	results, err := h.service.GetResults(c.Context(), sessionID)
	if err != nil {
		return err
	}

	return c.JSON(results)
}
