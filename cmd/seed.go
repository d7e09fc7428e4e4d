package cmd

import (
	"github.com/krishkalaria12/plantdoc-serve/catalog"
	"github.com/krishkalaria12/plantdoc-serve/logger"
	"github.com/spf13/cobra"
)

func seedCommand(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the plant and disease catalog into the database",
		Long: "Upserts plants and diseases by id. Without --file the catalog " +
			"bundled with the binary is loaded.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(file)
			if err != nil {
				return err
			}

			e, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer e.close()

			svc := catalog.NewService(e.db, logger.Component(e.log, "catalog"))
			return svc.Seed(cmd.Context(), c)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to load instead of the bundled one")
	return cmd
}

func loadCatalog(file string) (*catalog.Catalog, error) {
	if file == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(file)
}
