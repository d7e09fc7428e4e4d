package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/plantdoc-serve/models"
)

type createHistoryRequest struct {
	UserID           *uint   `json:"user_id" validate:"required"`
	PredictedClassID *int    `json:"predicted_class_id" validate:"required"`
	LocalURL         *string `json:"local_url" validate:"required"`
	RemoteURL        *string `json:"remote_url" validate:"required"`
	Date             *string `json:"date" validate:"required"`
}

// CreateHistory handles POST /history/create.
func (h *Handler) CreateHistory(c *fiber.Ctx) error {
	var req createHistoryRequest
	if err := h.bind(c, &req); err != nil {
		return h.respondError(c, err)
	}

	recorded, err := h.history.Record(c.UserContext(), models.History{
		UserID:           *req.UserID,
		PredictedClassID: *req.PredictedClassID,
		LocalURL:         *req.LocalURL,
		RemoteURL:        *req.RemoteURL,
		Date:             *req.Date,
	})
	if err != nil {
		return h.respondError(c, err)
	}

	return success(c, recorded)
}

// ListHistory handles GET /history?user_id=N. A missing or non-numeric
// user_id matches nothing and yields an empty list.
func (h *Handler) ListHistory(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 0)
	if err != nil {
		return success(c, []models.History{})
	}

	entries, err := h.history.ForUser(c.UserContext(), uint(userID))
	if err != nil {
		return h.respondError(c, err)
	}

	return success(c, entries)
}
