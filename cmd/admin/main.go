// Command admin runs the storefront admin console: it opens the embedded
// store, seeds it on first run, restores (or starts) a session and renders
// the role-gated screens to stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/shoplite/storefront-admin/internal/console"
	"github.com/shoplite/storefront-admin/internal/core/domain"
	"github.com/shoplite/storefront-admin/internal/core/service"
	"github.com/shoplite/storefront-admin/internal/infrastructure/config"
	"github.com/shoplite/storefront-admin/internal/infrastructure/db/bolt"
	"github.com/shoplite/storefront-admin/internal/infrastructure/seed"
	"github.com/shoplite/storefront-admin/internal/metrics"
	"github.com/shoplite/storefront-admin/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "admin:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, err := bolt.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	users := bolt.NewUserRepository(store)
	sessions := bolt.NewSessionStore(store)
	products := bolt.NewProductRepository(store)

	ctx := context.Background()

	if cfg.SeedOnStart {
		if err := seed.New(users, products, log).Run(ctx); err != nil {
			return err
		}
	}

	auth := service.NewAuthService(users, sessions, log)
	catalog := service.NewCatalogService(products, cfg.StrictTransitions, log)

	// Resume the persisted session; fall back to the seeded admin so a
	// fresh database still renders something useful.
	current, err := auth.Current(ctx)
	if errors.Is(err, domain.ErrNoSession) {
		current, err = auth.Login(ctx, "admin@example.com", "admin123")
	}
	if err != nil {
		return err
	}

	r := console.New(catalog, os.Stdout)
	r.Header(*current)
	for _, render := range []func() error{
		func() error { return r.Dashboard(ctx) },
		func() error { return r.Products(ctx, "") },
		func() error { return r.Publisher(ctx, *current) },
		func() error { return r.Inventory(ctx, *current) },
	} {
		if err := render(); err != nil {
			if errors.Is(err, domain.ErrForbidden) {
				continue
			}
			return err
		}
		fmt.Println()
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.Dump(cfg.MetricsTextfile); err != nil {
			log.Warn().Err(err).Msg("failed to write metrics textfile")
		}
	}

	return nil
}
