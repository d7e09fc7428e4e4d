package handler

import "github.com/gofiber/fiber/v2"

// ListPlants handles GET /plants.
func (h *Handler) ListPlants(c *fiber.Ctx) error {
	plants, err := h.catalog.ListPlants(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}
	return success(c, plants)
}

// ListDiseases handles GET /diseases.
func (h *Handler) ListDiseases(c *fiber.Ctx) error {
	diseases, err := h.catalog.ListDiseases(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}
	return success(c, diseases)
}
