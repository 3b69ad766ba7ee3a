package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "eatdecider",
	Short: "Recommendation engine for indecisive food ordering",
	Long: `eatdecider serves no-regret food picks. It filters a catalog by hard
constraints (budget, diet, ETA, oil), scores survivors per archetype and
returns either three labeled picks (Safe, Value, Adventure) or a ranked
top-N list, folding in a feedback-driven novelty penalty over time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.PersistentFlags().String("addr", ":8000", "HTTP listen address")
	rootCmd.PersistentFlags().String("storage-driver", "memory", "Catalog and feedback storage (memory or postgres)")
	rootCmd.PersistentFlags().String("storage-dsn", "", "Postgres DSN for the postgres driver")
	rootCmd.PersistentFlags().String("catalog-file", "examples/menu_items.json", "Catalog JSON file for the memory driver")
	rootCmd.PersistentFlags().Bool("kafka-enabled", false, "Publish feedback events to Kafka")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlag("server.addr", rootCmd.PersistentFlags().Lookup("addr"))
	viper.BindPFlag("storage.driver", rootCmd.PersistentFlags().Lookup("storage-driver"))
	viper.BindPFlag("storage.dsn", rootCmd.PersistentFlags().Lookup("storage-dsn"))
	viper.BindPFlag("storage.catalog_file", rootCmd.PersistentFlags().Lookup("catalog-file"))
	viper.BindPFlag("kafka.enabled", rootCmd.PersistentFlags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka.broker_list", rootCmd.PersistentFlags().Lookup("kafka-broker-list"))
}

func newLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
