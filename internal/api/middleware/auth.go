package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/faceproof/internal/domain"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth validates the X-API-Key header against the configured key.
// An empty configured key disables authentication entirely, which is the
// default for local development.
func APIKeyAuth(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Next()
		}

		provided := c.Get(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			return domain.ErrUnauthorized
		}

		return c.Next()
	}
}
