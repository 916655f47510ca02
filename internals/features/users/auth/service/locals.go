package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// userIDFromLocals lê o user_id gravado pelo AuthMiddleware.
func userIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("user_id ausente no contexto")
	}
	return uuid.Parse(raw)
}
