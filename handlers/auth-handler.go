package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/plantdoc-serve/models"
)

type loginRequest struct {
	Email    *string `form:"email" validate:"required"`
	Password *string `form:"password" validate:"required"`
}

// Login handles POST /login. Credentials arrive as form fields; the
// account is returned on success and no token or cookie is issued.
func (h *Handler) Login(c *fiber.Ctx) error {
	req := loginRequest{
		Email:    formValue(c, "email"),
		Password: formValue(c, "password"),
	}
	if err := h.check(&req); err != nil {
		return h.respondError(c, err)
	}

	user, err := h.accounts.Authenticate(c.UserContext(), *req.Email, *req.Password)
	if err != nil {
		return h.respondError(c, err)
	}

	return success(c, h.accountPayload([]models.User{*user}))
}

// formValue returns nil when key is absent from both urlencoded and
// multipart bodies, so presence can be told apart from an empty value.
func formValue(c *fiber.Ctx, key string) *string {
	args := c.Request().PostArgs()
	if args.Has(key) {
		v := string(args.Peek(key))
		return &v
	}

	if form, err := c.MultipartForm(); err == nil {
		if values, ok := form.Value[key]; ok && len(values) > 0 {
			v := values[0]
			return &v
		}
	}

	return nil
}
