package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/krishkalaria12/plantdoc-serve/auth"
	"github.com/krishkalaria12/plantdoc-serve/catalog"
	"github.com/krishkalaria12/plantdoc-serve/database"
	handler "github.com/krishkalaria12/plantdoc-serve/handlers"
	"github.com/krishkalaria12/plantdoc-serve/history"
	"github.com/krishkalaria12/plantdoc-serve/logger"
	"github.com/krishkalaria12/plantdoc-serve/metrics"
	"github.com/krishkalaria12/plantdoc-serve/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer e.close()

			return serve(cmd.Context(), e)
		},
	}
}

func serve(ctx context.Context, e *env) error {
	m, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	h := handler.New(handler.Options{
		Accounts:           auth.NewService(e.db, logger.Component(e.log, "auth")),
		Catalog:            catalog.NewService(e.db, logger.Component(e.log, "catalog")),
		History:            history.NewService(e.db, logger.Component(e.log, "history")),
		Ping:               func(ctx context.Context) error { return database.Ping(ctx, e.db) },
		Metrics:            m,
		Logger:             logger.Component(e.log, "handler"),
		RedactPasswordHash: e.cfg.RedactPasswordHash,
	})

	app := router.NewApp(h, m, logger.Component(e.log, "http"))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		e.log.Info().Str("addr", e.cfg.Addr()).Msg("server is listening")
		listenErr <- app.Listen(e.cfg.Addr())
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	e.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
