package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	handler "github.com/krishkalaria12/plantdoc-serve/handlers"
	"github.com/krishkalaria12/plantdoc-serve/metrics"
	"github.com/krishkalaria12/plantdoc-serve/middleware"
	"github.com/rs/zerolog"
)

// NewApp builds the Fiber app with middleware and every route registered.
func NewApp(h *handler.Handler, m *metrics.Metrics, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "plantdoc",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(
		middleware.RequestID(),
		middleware.Metrics(m),
		middleware.RequestLogger(log),
		recover.New(),
	)

	SetupRoutes(app, h)

	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	return app
}

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	app.Get("/", h.Index)
	app.Get("/healthz", h.Health)

	// Accounts
	app.Post("/users/create", h.CreateAccount)
	app.Post("/login", h.Login)
	app.Get("/users", h.ListAccounts)

	// Reference catalog
	app.Get("/plants", h.ListPlants)
	app.Get("/diseases", h.ListDiseases)

	// Prediction history
	app.Get("/history", h.ListHistory)
	app.Post("/history/create", h.CreateHistory)
}

// errorHandler renders errors that escape the handlers (unknown routes,
// panics) in the same {message, error} shape the handlers use.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "An unexpected error occurred"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
