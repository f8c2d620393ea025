package handler

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

const (
	maxImageSize = 10 * 1024 * 1024 // 10MB
)

var validImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// extractImage reads and validates an uploaded image from a multipart field
func extractImage(c *fiber.Ctx, field string) ([]byte, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, domain.ErrValidationFailed.WithError(err)
	}

	if file.Size == 0 || file.Size > maxImageSize {
		return nil, domain.ErrInvalidImage
	}

	contentType := file.Header.Get("Content-Type")
	if !validImageTypes[contentType] {
		return nil, domain.ErrInvalidImage
	}

	f, err := file.Open()
	if err != nil {
		return nil, domain.ErrInvalidImage.WithError(err)
	}
	defer func() {
		_ = f.Close()
	}()

	imageBytes, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.ErrInvalidImage.WithError(err)
	}

	return imageBytes, nil
}

// parseThreshold reads the optional threshold form value, falling back to def
func parseThreshold(c *fiber.Ctx, def float64) (float64, error) {
	raw := c.FormValue("threshold")
	if raw == "" {
		return def, nil
	}

	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.ErrValidationFailed.WithError(err)
	}
	if threshold < 0 || threshold > 100 {
		return 0, domain.ErrInvalidThreshold
	}

	return threshold, nil
}
