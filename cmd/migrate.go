package cmd

import "github.com/spf13/cobra"

func migrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer e.close()

			e.log.Info().Msg("database migrated")
			return nil
		},
	}
}
