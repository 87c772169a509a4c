package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shoplite/storefront-admin/internal/core/domain"
)

// CreateProductInput carries all data needed to add a catalog record.
// Price must be non-negative; that check lives in the service because the
// validator does not understand decimal.Decimal.
type CreateProductInput struct {
	Name              string `validate:"required"`
	Price             decimal.Decimal
	SKU               string `validate:"required"`
	Status            string `validate:"omitempty,oneof=draft pending_approval approved published rejected"`
	Stock             int    `validate:"gte=0"`
	LowStockThreshold int    `validate:"gte=0"`
	Category          string
}

// UpdateProductInput is a partial edit from the management screen. Nil
// fields are left unchanged. Status is deliberately absent: lifecycle
// changes go through Transition.
type UpdateProductInput struct {
	ID                int64
	Name              *string
	Price             *decimal.Decimal
	SKU               *string
	Stock             *int
	LowStockThreshold *int
	Category          *string
}

// DashboardStats are the stat-card numbers, derived purely from the
// product list.
type DashboardStats struct {
	TotalProducts   int
	LowStock        int
	OutOfStock      int
	PendingApproval int
}

// CatalogService defines the product management, publisher and inventory
// workflows layered on top of the product repository.
type CatalogService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	ProductsByStatus(ctx context.Context, status domain.Status) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, input UpdateProductInput) error
	// Transition moves a product to the next lifecycle state. In strict
	// mode illegal pipeline moves fail with ErrInvalidTransition; in
	// permissive mode any state can be forced onto any product.
	Transition(ctx context.Context, id int64, next domain.Status) error
	SetStock(ctx context.Context, id int64, stock int) error
	Restock(ctx context.Context, id int64, qty int) error
	SetThreshold(ctx context.Context, id int64, threshold int) error
	Stats(ctx context.Context) (*DashboardStats, error)
	// LowStockReport returns every product whose stock level is not
	// healthy, in catalog order.
	LowStockReport(ctx context.Context) ([]domain.Product, error)
}
