package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/plantdoc-serve/auth"
	"github.com/krishkalaria12/plantdoc-serve/database"
	"github.com/krishkalaria12/plantdoc-serve/models"
)

var errMalformedRequest = errors.New("malformed request")

func success(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "success",
		"data":    data,
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

func failWithError(c *fiber.Ctx, status int, message string, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// bind decodes the JSON body into req and checks required fields.
func (h *Handler) bind(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", errMalformedRequest, err)
	}
	return h.check(req)
}

func (h *Handler) check(req any) error {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", errMalformedRequest, err)
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return fmt.Errorf("%w: missing required field(s): %s", errMalformedRequest, strings.Join(missing, ", "))
}

// respondError maps a failure to its status code and body, logging the
// ones the client cannot fix.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	var storageErr *database.StorageError

	switch {
	case errors.Is(err, errMalformedRequest):
		return failWithError(c, fiber.StatusBadRequest, "Malformed request", err)
	case errors.Is(err, auth.ErrEmailExists):
		return fail(c, fiber.StatusConflict, "Email already exists")
	case errors.Is(err, auth.ErrUnregisteredEmail):
		return fail(c, fiber.StatusNotFound, "Unregistered email")
	case errors.Is(err, auth.ErrWrongPassword):
		return fail(c, fiber.StatusUnauthorized, "Wrong password")
	case errors.As(err, &storageErr):
		h.metrics.StorageError(storageErr.Op)
		h.log.Error().Err(storageErr.Err).Str("op", storageErr.Op).Str("path", c.Path()).Msg("database error")
		return failWithError(c, fiber.StatusInternalServerError, "Database error", storageErr.Err)
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("unexpected error")
		return failWithError(c, fiber.StatusInternalServerError, "An unexpected error occurred", err)
	}
}

// accountPayload renders accounts with or without the password hash.
func (h *Handler) accountPayload(users []models.User) any {
	if !h.redact {
		return users
	}

	views := make([]models.AccountView, 0, len(users))
	for _, u := range users {
		views = append(views, u.Redacted())
	}
	return views
}
