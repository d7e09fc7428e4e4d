package handler

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/krishkalaria12/plantdoc-serve/auth"
	"github.com/krishkalaria12/plantdoc-serve/metrics"
	"github.com/krishkalaria12/plantdoc-serve/models"
	"github.com/rs/zerolog"
)

type AccountService interface {
	CreateAccount(ctx context.Context, in auth.NewAccount) ([]models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	ListAccounts(ctx context.Context) ([]models.User, error)
}

type CatalogService interface {
	ListPlants(ctx context.Context) ([]models.Plant, error)
	ListDiseases(ctx context.Context) ([]models.Disease, error)
}

type HistoryService interface {
	Record(ctx context.Context, entry models.History) ([]models.History, error)
	ForUser(ctx context.Context, userID uint) ([]models.History, error)
}

// Pinger reports whether the store is reachable.
type Pinger func(ctx context.Context) error

type Options struct {
	Accounts AccountService
	Catalog  CatalogService
	History  HistoryService
	Ping     Pinger
	Metrics  *metrics.Metrics
	Logger   zerolog.Logger

	// RedactPasswordHash serializes accounts without the password field.
	RedactPasswordHash bool
}

// Handler serves every endpoint. It keeps no per-request state; everything
// is read from the store on each call.
type Handler struct {
	accounts AccountService
	catalog  CatalogService
	history  HistoryService
	ping     Pinger
	metrics  *metrics.Metrics
	log      zerolog.Logger
	validate *validator.Validate
	redact   bool
}

func New(opts Options) *Handler {
	return &Handler{
		accounts: opts.Accounts,
		catalog:  opts.Catalog,
		history:  opts.History,
		ping:     opts.Ping,
		metrics:  opts.Metrics,
		log:      opts.Logger,
		validate: newValidator(),
		redact:   opts.RedactPasswordHash,
	}
}

// newValidator reports fields by their json or form name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}
