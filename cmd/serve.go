package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/arvindrk/eatdecider/internal/engine"
	"github.com/arvindrk/eatdecider/internal/models"
	"github.com/arvindrk/eatdecider/internal/producers"
	"github.com/arvindrk/eatdecider/internal/repositories"
	"github.com/arvindrk/eatdecider/internal/repositories/memory"
	"github.com/arvindrk/eatdecider/internal/repositories/postgres"
	"github.com/arvindrk/eatdecider/internal/server"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recommendation HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := newLogger()

	catalog, feedback, cleanup, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	eng := engine.New(cfg, catalog, feedback, logger)

	if cfg.Kafka.Enabled {
		producer, err := producers.NewSaramaProducer(cfg.Kafka.BrokerList)
		if err != nil {
			return fmt.Errorf("creating Kafka producer: %w", err)
		}
		defer producer.Close()
		eng.SetPublisher(producer)
		logger.Info().Str("topic", cfg.Kafka.Topic).Msg("feedback events will be published to Kafka")
	}

	srv := server.New(cfg, eng, catalog, logger)

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(runCtx)
}

func openStores(ctx context.Context, cfg *models.Config) (repositories.CatalogRepository, repositories.FeedbackRepository, func(), error) {
	switch cfg.Storage.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		return postgres.NewCatalogRepository(pool), postgres.NewFeedbackRepository(pool), pool.Close, nil
	case "memory":
		catalog, err := memory.NewCatalogFromFile(cfg.Storage.CatalogFile)
		if err != nil {
			return nil, nil, nil, err
		}
		return catalog, memory.NewFeedbackLog(), func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
