package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

// ReferenceService interface for the service
type ReferenceService interface {
	RegisterReference(ctx context.Context, name string, image []byte) (*domain.ReferenceIdentity, error)
	ListReferences(ctx context.Context) ([]domain.ReferenceIdentity, error)
	DeleteReference(ctx context.Context, id uuid.UUID) error
}

// ReferenceHandler handles reference identity management
type ReferenceHandler struct {
	service ReferenceService
	logger  *slog.Logger
}

func NewReferenceHandler(service ReferenceService, logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		service: service,
		logger:  logger,
	}
}

// ReferenceResponse is a reference identity without its image payload
type ReferenceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toReferenceResponse(ref *domain.ReferenceIdentity) ReferenceResponse {
	return ReferenceResponse{
		ID:        ref.ID.String(),
		Name:      ref.Name,
		CreatedAt: ref.CreatedAt,
	}
}

// Register POST /v1/references - register a reference identity
func (h *ReferenceHandler) Register(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return domain.ErrValidationFailed.WithError(errors.New("name is required"))
	}

	image, err := extractImage(c, "image")
	if err != nil {
		return fmt.Errorf("register reference: %w", err)
	}

	ref, err := h.service.RegisterReference(c.Context(), name, image)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toReferenceResponse(ref))
}

// List GET /v1/references - list registered references in registration order
func (h *ReferenceHandler) List(c *fiber.Ctx) error {
	refs, err := h.service.ListReferences(c.Context())
	if err != nil {
		return err
	}

	out := make([]ReferenceResponse, 0, len(refs))
	for i := range refs {
		out = append(out, toReferenceResponse(&refs[i]))
	}

	return c.JSON(fiber.Map{
		"references": out,
		"count":      len(out),
	})
}

// Delete DELETE /v1/references/:id - remove a reference identity
func (h *ReferenceHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return domain.ErrValidationFailed.WithError(err)
	}

	if err := h.service.DeleteReference(c.Context(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
