package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shoplite/storefront-admin/internal/core/domain"
)

// ProductPatch is a partial product update. Nil fields keep the stored
// value; set fields overwrite it (shallow merge). ID selects the record.
type ProductPatch struct {
	ID                int64
	Name              *string
	Price             *decimal.Decimal
	SKU               *string
	Status            *domain.Status
	Stock             *int
	LowStockThreshold *int
	Category          *string
}

// ProductRepository defines persistence operations for the catalog.
type ProductRepository interface {
	// List returns all products in insertion order. An absent or corrupt
	// products entry behaves as an empty list, never an error.
	List(ctx context.Context) ([]domain.Product, error)
	// Create assigns a fresh id to the draft, appends it and returns the
	// stored record.
	Create(ctx context.Context, draft domain.Product) (domain.Product, error)
	// Update merges the patch over the stored record. An unknown id is a
	// silent no-op, not an error.
	Update(ctx context.Context, patch ProductPatch) error
	// SetStatus overwrites only the status field. An unknown id is a
	// silent no-op, not an error.
	SetStatus(ctx context.Context, id int64, status domain.Status) error
}
