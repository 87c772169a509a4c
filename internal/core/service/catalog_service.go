package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/shoplite/storefront-admin/internal/core/domain"
	"github.com/shoplite/storefront-admin/internal/core/ports"
	"github.com/shoplite/storefront-admin/internal/metrics"
)

// CatalogService implements the product management, publisher and inventory
// workflows. strict toggles lifecycle enforcement: the stored behaviour is
// permissive (any status can be forced), strict mode only allows the
// forward pipeline.
type CatalogService struct {
	products ports.ProductRepository
	validate *validator.Validate
	strict   bool
	log      zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, strict bool, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		validate: validator.New(),
		strict:   strict,
		log:      log,
	}
}

// Products returns the full catalog in insertion order.
func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// ProductsByStatus returns the catalog filtered to one lifecycle state
// (the management screen filter buttons and the publisher lanes).
func (s *CatalogService) ProductsByStatus(ctx context.Context, status domain.Status) ([]domain.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []domain.Product
	for _, p := range all {
		if p.Status == status {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// CreateProduct validates and stores a new catalog record. Status defaults
// to draft when absent.
func (s *CatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if err := checkInput(s.validate, input); err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	status := domain.Status(input.Status)
	if status == "" {
		status = domain.StatusDraft
	}

	created, err := s.products.Create(ctx, domain.Product{
		Name:              input.Name,
		Price:             input.Price,
		SKU:               input.SKU,
		Status:            status,
		Stock:             input.Stock,
		LowStockThreshold: input.LowStockThreshold,
		Category:          input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info().Int64("product_id", created.ID).Str("sku", created.SKU).Msg("product created")
	return &created, nil
}

// UpdateProduct applies a partial edit. Fields left nil keep their stored
// value.
func (s *CatalogService) UpdateProduct(ctx context.Context, input ports.UpdateProductInput) error {
	if input.Stock != nil && *input.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrInvalidInput)
	}
	if input.LowStockThreshold != nil && *input.LowStockThreshold < 0 {
		return fmt.Errorf("%w: low stock threshold must not be negative", domain.ErrInvalidInput)
	}
	if input.Price != nil && input.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}

	err := s.products.Update(ctx, ports.ProductPatch{
		ID:                input.ID,
		Name:              input.Name,
		Price:             input.Price,
		SKU:               input.SKU,
		Stock:             input.Stock,
		LowStockThreshold: input.LowStockThreshold,
		Category:          input.Category,
	})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Transition moves a product through the publishing lifecycle (a drop onto
// a publisher lane). The product must exist: the workflow needs its current
// status for validation even in permissive mode.
func (s *CatalogService) Transition(ctx context.Context, id int64, next domain.Status) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, next)
	}

	current, err := s.findProduct(ctx, id)
	if err != nil {
		return err
	}

	if s.strict && !current.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, current.Status, next)
	}

	if err := s.products.SetStatus(ctx, id, next); err != nil {
		return fmt.Errorf("transition: %w", err)
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(current.Status), string(next)).Inc()
	s.log.Info().
		Int64("product_id", id).
		Str("from", string(current.Status)).
		Str("to", string(next)).
		Msg("product status changed")

	return nil
}

// SetStock overwrites a product's stock count (the inventory edit dialog).
func (s *CatalogService) SetStock(ctx context.Context, id int64, stock int) error {
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrInvalidInput)
	}
	if _, err := s.findProduct(ctx, id); err != nil {
		return err
	}
	if err := s.products.Update(ctx, ports.ProductPatch{ID: id, Stock: &stock}); err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// Restock adds qty units to a product's stock (the inventory restock
// action).
func (s *CatalogService) Restock(ctx context.Context, id int64, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: restock quantity must be positive", domain.ErrInvalidInput)
	}
	current, err := s.findProduct(ctx, id)
	if err != nil {
		return err
	}
	next := current.Stock + qty
	if err := s.products.Update(ctx, ports.ProductPatch{ID: id, Stock: &next}); err != nil {
		return fmt.Errorf("restock: %w", err)
	}
	s.log.Info().Int64("product_id", id).Int("stock", next).Msg("product restocked")
	return nil
}

// SetThreshold overwrites a product's low-stock threshold.
func (s *CatalogService) SetThreshold(ctx context.Context, id int64, threshold int) error {
	if threshold < 0 {
		return fmt.Errorf("%w: low stock threshold must not be negative", domain.ErrInvalidInput)
	}
	if _, err := s.findProduct(ctx, id); err != nil {
		return err
	}
	if err := s.products.Update(ctx, ports.ProductPatch{ID: id, LowStockThreshold: &threshold}); err != nil {
		return fmt.Errorf("set threshold: %w", err)
	}
	return nil
}

// Stats derives the dashboard stat-card numbers from the product list and
// refreshes the catalog gauges.
func (s *CatalogService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{TotalProducts: len(all)}
	for _, p := range all {
		switch p.StockLevel() {
		case domain.StockLow:
			stats.LowStock++
		case domain.StockOut:
			stats.OutOfStock++
		}
		if p.Status == domain.StatusPendingApproval {
			stats.PendingApproval++
		}
	}

	metrics.ProductsTotal.Set(float64(stats.TotalProducts))
	metrics.ProductsLowStock.Set(float64(stats.LowStock))
	metrics.ProductsOutOfStock.Set(float64(stats.OutOfStock))
	metrics.ProductsPendingApproval.Set(float64(stats.PendingApproval))

	return stats, nil
}

// LowStockReport returns every product whose stock is at or below its
// threshold, zero-stock items included (the dashboard warning table).
func (s *CatalogService) LowStockReport(ctx context.Context) ([]domain.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	var report []domain.Product
	for _, p := range all {
		if p.StockLevel() != domain.StockHealthy {
			report = append(report, p)
		}
	}
	return report, nil
}

// findProduct scans the list for id; the store contract has no point
// lookup, mirroring the single-entry persisted layout.
func (s *CatalogService) findProduct(ctx context.Context, id int64) (*domain.Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
}
