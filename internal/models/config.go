package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver      string `mapstructure:"driver"` // "memory" or "postgres"
	DSN         string `mapstructure:"dsn"`
	CatalogFile string `mapstructure:"catalog_file"` // memory driver only
}

// FeeConfig drives the fee calculator. Percentages apply to the item's
// base price; flat fees are in the catalog currency.
type FeeConfig struct {
	Currency              string  `mapstructure:"currency"`
	PackagingFee          float64 `mapstructure:"packaging_fee"`
	BaseDeliveryFee       float64 `mapstructure:"base_delivery_fee"`
	FarDeliveryFee        float64 `mapstructure:"far_delivery_fee"`
	FreeDeliveryThreshold float64 `mapstructure:"free_delivery_threshold"`
	SmallOrderThreshold   float64 `mapstructure:"small_order_threshold"`
	SmallOrderFee         float64 `mapstructure:"small_order_fee"`
	PlatformFeeRate       float64 `mapstructure:"platform_fee_rate"`
	TaxRate               float64 `mapstructure:"tax_rate"`
}

// Weights for one archetype's composite. Magnitudes are tunable policy;
// the relative ordering within each archetype is the contract.
type Weights struct {
	Rating  float64 `mapstructure:"rating"`
	Value   float64 `mapstructure:"value"`
	Spice   float64 `mapstructure:"spice"`
	Novelty float64 `mapstructure:"novelty"`
	Eta     float64 `mapstructure:"eta"`
}

type ScoringConfig struct {
	Safe      Weights `mapstructure:"safe"`
	Value     Weights `mapstructure:"value"`
	Adventure Weights `mapstructure:"adventure"`
	General   Weights `mapstructure:"general"`

	NoveltyHalfLifeHours float64 `mapstructure:"novelty_half_life_hours"`
	MinAdventureRating   float64 `mapstructure:"min_adventure_rating"`
	AdventureSpiceLift   float64 `mapstructure:"adventure_spice_lift"`
}

type KafkaConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	BrokerList string `mapstructure:"broker_list"`
	Topic      string `mapstructure:"topic"`
}

type ExportConfig struct {
	Destination string `mapstructure:"destination"` // "local" or "s3"
	Path        string `mapstructure:"path"`
	Bucket      string `mapstructure:"bucket"`
	Region      string `mapstructure:"region"`
}

type SeedConfig struct {
	Restaurants  int `mapstructure:"restaurants"`
	ItemsPerRest int `mapstructure:"items_per_restaurant"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Fees    FeeConfig     `mapstructure:"fees"`
	Scoring ScoringConfig `mapstructure:"scoring"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	Export  ExportConfig  `mapstructure:"export"`
	Seed    SeedConfig    `mapstructure:"seed"`
}

func setDefaults() {
	viper.SetDefault("server.addr", ":8000")
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)

	viper.SetDefault("storage.driver", "memory")
	viper.SetDefault("storage.catalog_file", "examples/menu_items.json")

	viper.SetDefault("fees.currency", "₹")
	viper.SetDefault("fees.packaging_fee", 5.0)
	viper.SetDefault("fees.base_delivery_fee", 20.0)
	viper.SetDefault("fees.far_delivery_fee", 35.0)
	viper.SetDefault("fees.free_delivery_threshold", 500.0)
	viper.SetDefault("fees.small_order_threshold", 100.0)
	viper.SetDefault("fees.small_order_fee", 15.0)
	viper.SetDefault("fees.platform_fee_rate", 0.04)
	viper.SetDefault("fees.tax_rate", 0.05)

	viper.SetDefault("scoring.safe", map[string]float64{
		"rating": 0.50, "eta": 0.25, "spice": 0.15, "value": 0.10, "novelty": 0,
	})
	viper.SetDefault("scoring.value", map[string]float64{
		"value": 0.50, "rating": 0.30, "eta": 0.10, "spice": 0.10, "novelty": 0,
	})
	viper.SetDefault("scoring.adventure", map[string]float64{
		"novelty": 0.40, "spice": 0.35, "rating": 0.15, "value": 0.10, "eta": 0,
	})
	viper.SetDefault("scoring.general", map[string]float64{
		"rating": 0.45, "value": 0.35, "novelty": 0.20, "spice": 0, "eta": 0,
	})
	viper.SetDefault("scoring.novelty_half_life_hours", 72.0)
	viper.SetDefault("scoring.min_adventure_rating", 3.0)
	viper.SetDefault("scoring.adventure_spice_lift", 1.5)

	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.broker_list", "localhost:9092")
	viper.SetDefault("kafka.topic", "feedback_events")

	viper.SetDefault("export.destination", "local")
	viper.SetDefault("export.path", "exports")
	viper.SetDefault("export.region", "eu-west-1")

	viper.SetDefault("seed.restaurants", 25)
	viper.SetDefault("seed.items_per_restaurant", 8)
}

// LoadConfig initializes and reads the configuration using Viper. A
// missing config file is fine; defaults and environment variables apply.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
