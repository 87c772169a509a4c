// Package seed populates an empty store with the sample records the demo
// screens expect: two staff accounts and four products spanning the four
// non-rejected lifecycle states, including one zero-stock item. Seeding is
// idempotent: each collection is only seeded while it is empty.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shoplite/storefront-admin/internal/core/domain"
	"github.com/shoplite/storefront-admin/internal/core/ports"
	"github.com/shoplite/storefront-admin/internal/metrics"
)

type Seeder struct {
	users    ports.UserRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

func New(users ports.UserRepository, products ports.ProductRepository, log zerolog.Logger) *Seeder {
	return &Seeder{users: users, products: products, log: log}
}

// Run seeds whichever collections are currently empty. Safe to call on
// every startup.
func (s *Seeder) Run(ctx context.Context) error {
	existingUsers, err := s.users.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existingUsers) == 0 {
		for _, draft := range sampleUsers() {
			if _, err := s.users.Create(ctx, draft); err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
			metrics.SeededRecordsTotal.WithLabelValues("users").Inc()
		}
		s.log.Info().Int("count", len(sampleUsers())).Msg("seeded sample users")
	}

	existingProducts, err := s.products.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existingProducts) == 0 {
		for _, draft := range sampleProducts() {
			if _, err := s.products.Create(ctx, draft); err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
			metrics.SeededRecordsTotal.WithLabelValues("products").Inc()
		}
		s.log.Info().Int("count", len(sampleProducts())).Msg("seeded sample products")
	}

	return nil
}

func sampleUsers() []domain.User {
	return []domain.User{
		{
			Name:       "Admin User",
			Email:      "admin@example.com",
			Password:   "admin123",
			Role:       domain.RoleAdmin,
			Department: "electronics",
			Avatar:     "AU",
		},
		{
			Name:       "John Agent",
			Email:      "agent@example.com",
			Password:   "agent123",
			Role:       domain.RoleAgent,
			Department: "fashion",
			Avatar:     "JA",
		},
	}
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			Name:              "Gaming Laptop Pro",
			Price:             decimal.RequireFromString("1299.99"),
			SKU:               "LP-001",
			Status:            domain.StatusPublished,
			Stock:             45,
			LowStockThreshold: 10,
			Category:          "electronics",
		},
		{
			Name:              "Wireless Headphones",
			Price:             decimal.RequireFromString("199.99"),
			SKU:               "HP-042",
			Status:            domain.StatusPendingApproval,
			Stock:             25,
			LowStockThreshold: 15,
			Category:          "electronics",
		},
		{
			Name:              "Smartphone X",
			Price:             decimal.RequireFromString("899.99"),
			SKU:               "SP-128",
			Status:            domain.StatusApproved,
			Stock:             30,
			LowStockThreshold: 10,
			Category:          "electronics",
		},
		{
			Name:              "Smart Watch",
			Price:             decimal.RequireFromString("299.99"),
			SKU:               "SW-099",
			Status:            domain.StatusDraft,
			Stock:             0,
			LowStockThreshold: 5,
			Category:          "electronics",
		},
	}
}
