package cmd

import (
	"fmt"

	"github.com/arvindrk/eatdecider/internal/factories"
	"github.com/arvindrk/eatdecider/internal/models"
	"github.com/arvindrk/eatdecider/internal/repositories/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a fictional catalog and bulk-load it into postgres",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cfg.Storage.Driver != "postgres" {
			return fmt.Errorf("seed requires the postgres storage driver")
		}

		ctx := cmd.Context()
		pool, err := pgxpool.New(ctx, cfg.Storage.DSN)
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		defer pool.Close()

		catalog := postgres.NewCatalogRepository(pool)
		factory := &factories.CatalogFactory{}

		bar := progressbar.Default(int64(cfg.Seed.Restaurants), "seeding catalog")
		total := 0
		for i := 0; i < cfg.Seed.Restaurants; i++ {
			items := factory.CreateRestaurantItems(cfg.Seed.ItemsPerRest)
			if err := catalog.BulkCreate(ctx, items); err != nil {
				return fmt.Errorf("bulk insert failed: %w", err)
			}
			total += len(items)
			bar.Add(1)
		}

		fmt.Printf("Seeded %d items across %d restaurants\n", total, cfg.Seed.Restaurants)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
