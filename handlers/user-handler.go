package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/plantdoc-serve/auth"
)

type createAccountRequest struct {
	FirstName *string `json:"first_name" validate:"required"`
	LastName  *string `json:"last_name" validate:"required"`
	Email     *string `json:"email" validate:"required"`
	Password  *string `json:"password" validate:"required"`
}

// CreateAccount handles POST /users/create.
func (h *Handler) CreateAccount(c *fiber.Ctx) error {
	var req createAccountRequest
	if err := h.bind(c, &req); err != nil {
		return h.respondError(c, err)
	}

	created, err := h.accounts.CreateAccount(c.UserContext(), auth.NewAccount{
		FirstName: *req.FirstName,
		LastName:  *req.LastName,
		Email:     *req.Email,
		Password:  *req.Password,
	})
	if err != nil {
		return h.respondError(c, err)
	}

	return success(c, h.accountPayload(created))
}

// ListAccounts handles GET /users.
func (h *Handler) ListAccounts(c *fiber.Ctx) error {
	users, err := h.accounts.ListAccounts(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}

	return success(c, h.accountPayload(users))
}
