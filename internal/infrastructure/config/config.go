package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// DBPath is the embedded database file holding users, products and
	// the current session.
	DBPath string `env:"DB_PATH, default=storefront.db"`

	// SeedOnStart populates empty collections with the sample records at
	// startup. Seeding is idempotent, so leaving it on is safe.
	SeedOnStart bool `env:"SEED_ON_START, default=true"`

	// StrictTransitions toggles lifecycle enforcement in the publisher
	// workflow. Off by default: any status can be forced onto any
	// product, matching the tool's historical behaviour.
	StrictTransitions bool `env:"CATALOG_STRICT_TRANSITIONS, default=false"`

	// MetricsTextfile, when set, is where the Prometheus registry is
	// dumped before exit (textfile collector format).
	MetricsTextfile string `env:"METRICS_TEXTFILE"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
