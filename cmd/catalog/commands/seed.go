package commands

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/mytheresa/product-categories/config"
	"github.com/mytheresa/product-categories/models"
)

func newSeedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the catalog tables in Postgres and insert the seed dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.cfg.DatabaseURL == "" {
				return config.ErrMissingDatabaseURL
			}

			db, err := sql.Open("postgres", e.cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			res, err := models.NewSeeder(db).Seed(cmd.Context())
			if err != nil {
				return err
			}

			e.log.Info().
				Int64("users", res.Users).
				Int64("categories", res.Categories).
				Int64("products", res.Products).
				Msg("seed complete")
			return nil
		},
	}
}
