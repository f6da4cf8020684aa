package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mytheresa/product-categories/catalog"
	"github.com/mytheresa/product-categories/config"
	"github.com/mytheresa/product-categories/logger"
	"github.com/mytheresa/product-categories/models"
)

// env holds what every subcommand needs, filled in by PersistentPreRunE.
type env struct {
	envFiles []string
	cfg      config.Config
	log      zerolog.Logger
}

// NewRootCmd builds the catalog command tree.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "catalog",
		Short: "Product Categories - browse products by owner and name",
		Long: `Product Categories joins users, categories and products into one table
and narrows it by category owner and a free-text search query.

Data source is chosen with CATALOG_SOURCE (static or postgres).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(e.envFiles...)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{
				Env:   cfg.Env,
				Level: cfg.LogLevel,
				Out:   cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	root.PersistentFlags().StringSliceVar(&e.envFiles, "env-file", nil, "Env files to load (default .env)")

	root.AddCommand(
		newListCmd(e),
		newBrowseCmd(e),
		newServeCmd(e),
		newSeedCmd(e),
	)
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadCatalog reads the configured data source and joins it.
func (e *env) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	log := e.log.With().Str("source", e.cfg.Source).Logger()

	var provider catalog.Provider
	switch e.cfg.Source {
	case config.SourcePostgres:
		db, err := models.OpenDB(e.cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		provider = models.NewCatalogRepository(db)
	default:
		provider = models.NewStaticProvider()
	}

	c, err := catalog.Load(ctx, provider)
	if err != nil {
		log.Error().Err(err).Msg("catalog data is unusable")
		return nil, err
	}

	log.Debug().
		Int("owners", len(c.Users())).
		Int("categories", len(c.Categories())).
		Msg("catalog loaded")
	return c, nil
}
