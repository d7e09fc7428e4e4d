package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/plantdoc-serve/metrics"
)

// Metrics records request count and latency labelled by the matched route
// pattern. It must wrap RequestLogger so the final status is known.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		if c.Response().StatusCode() == fiber.StatusNotFound && route == "/" && c.Path() != "/" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Method(), route, c.Response().StatusCode(), time.Since(start))

		return err
	}
}
