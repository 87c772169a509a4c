package bolt

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/shoplite/storefront-admin/internal/core/domain"
	"github.com/shoplite/storefront-admin/internal/core/ports"
)

// ProductRepository stores the catalog as a single JSON array entry.
type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// List returns all products in insertion order.
func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.store.db.View(func(tx *bbolt.Tx) error {
		products = decodeList[domain.Product](bucket(tx), keyProducts)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Create assigns the next id to the draft, appends it to the products entry
// and returns the stored record.
func (r *ProductRepository) Create(_ context.Context, draft domain.Product) (domain.Product, error) {
	err := r.store.db.Update(func(tx *bbolt.Tx) error {
		b := bucket(tx)
		products := decodeList[domain.Product](b, keyProducts)

		var maxID int64
		for _, p := range products {
			if p.ID > maxID {
				maxID = p.ID
			}
		}
		id, err := nextID(b, keyProductsSeq, maxID)
		if err != nil {
			return err
		}

		draft.ID = id
		return putJSON(b, keyProducts, append(products, draft))
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return draft, nil
}

// Update merges the patch over the stored record: nil fields keep their
// stored value. An unknown id is a silent no-op.
func (r *ProductRepository) Update(_ context.Context, patch ports.ProductPatch) error {
	err := r.store.db.Update(func(tx *bbolt.Tx) error {
		b := bucket(tx)
		products := decodeList[domain.Product](b, keyProducts)

		for i := range products {
			if products[i].ID != patch.ID {
				continue
			}
			applyPatch(&products[i], patch)
			return putJSON(b, keyProducts, products)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetStatus overwrites only the status field. An unknown id is a silent
// no-op.
func (r *ProductRepository) SetStatus(_ context.Context, id int64, status domain.Status) error {
	err := r.store.db.Update(func(tx *bbolt.Tx) error {
		b := bucket(tx)
		products := decodeList[domain.Product](b, keyProducts)

		for i := range products {
			if products[i].ID != id {
				continue
			}
			products[i].Status = status
			return putJSON(b, keyProducts, products)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("set product status: %w", err)
	}
	return nil
}

func applyPatch(p *domain.Product, patch ports.ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.LowStockThreshold != nil {
		p.LowStockThreshold = *patch.LowStockThreshold
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
}
