// Package cmd wires configuration, logging and the store into the
// plantdoc command line.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/krishkalaria12/plantdoc-serve/config"
	"github.com/krishkalaria12/plantdoc-serve/database"
	"github.com/krishkalaria12/plantdoc-serve/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type options struct {
	envFile string
}

// RootCommand creates the plantdoc command and its subcommands.
func RootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "plantdoc",
		Short:         "PlantDoc plant disease identification backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Path to a .env file loaded before reading the environment")

	rootCmd.AddCommand(
		serveCommand(opts),
		migrateCommand(opts),
		seedCommand(opts),
	)

	return rootCmd
}

func Execute() {
	if err := RootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env is what every subcommand needs: settings, a logger and an open,
// migrated store.
type env struct {
	cfg *config.Config
	log zerolog.Logger
	db  *gorm.DB
}

func bootstrap(opts *options) (*env, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	db, err := database.Open(cfg, logger.Component(log, "database"))
	if err != nil {
		return nil, err
	}

	if err := database.MigrateModels(db); err != nil {
		_ = database.CloseDB(db)
		return nil, err
	}

	return &env{cfg: cfg, log: log, db: db}, nil
}

func (e *env) close() {
	if err := database.CloseDB(e.db); err != nil {
		e.log.Error().Err(err).Msg("error closing the database connection")
	}
}
