package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

// Index handles GET /.
func (h *Handler) Index(c *fiber.Ctx) error {
	return c.SendString("PlantDoc!!!")
}

// Health handles GET /healthz by pinging the store.
func (h *Handler) Health(c *fiber.Ctx) error {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			h.log.Warn().Err(err).Msg("health check failed")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
				"error":  err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
