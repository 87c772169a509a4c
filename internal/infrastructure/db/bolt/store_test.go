package bolt

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.etcd.io/bbolt"

	"github.com/shoplite/storefront-admin/internal/core/domain"
	"github.com/shoplite/storefront-admin/internal/core/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "storefront.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// corruptEntry overwrites a collection entry with bytes that are not JSON.
func corruptEntry(t *testing.T, store *Store, key string) {
	t.Helper()
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return bucket(tx).Put([]byte(key), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("corrupt %s: %v", key, err)
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

func TestUserRepository_RoundTrip(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	before, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(before) != 0 {
		t.Fatalf("fresh store must be empty, got %d users", len(before))
	}

	draft := domain.User{
		Name:       "Admin User",
		Email:      "admin@example.com",
		Password:   "admin123",
		Role:       domain.RoleAdmin,
		Department: "electronics",
		Avatar:     "AU",
	}
	created, err := repo.Create(ctx, draft)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a fresh id")
	}

	after, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != 1 {
		t.Fatalf("expected 1 user, got %d", len(after))
	}
	stored := after[0]
	if stored.ID != created.ID {
		t.Errorf("id = %d, want %d", stored.ID, created.ID)
	}
	draft.ID = created.ID
	if stored != draft {
		t.Errorf("stored user differs from draft: %+v vs %+v", stored, draft)
	}
}

func TestUserRepository_IDsAreUniqueAndIncreasing(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		u, err := repo.Create(ctx, domain.User{Name: "U", Email: "u@example.com", Password: "pw"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if u.ID <= last {
			t.Fatalf("id %d not greater than previous %d", u.ID, last)
		}
		last = u.ID
	}
}

func TestUserRepository_DuplicateEmailsAccepted(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	// The store does not enforce email uniqueness; that check belongs to
	// the registration workflow.
	for i := 0; i < 2; i++ {
		if _, err := repo.Create(ctx, domain.User{Name: "Twin", Email: "same@example.com", Password: "pw"}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	users, _ := repo.List(ctx)
	if len(users) != 2 {
		t.Fatalf("expected both records stored, got %d", len(users))
	}
}

func TestUserRepository_FindByCredentials(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, domain.User{Name: "Admin", Email: "admin@example.com", Password: "admin123"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindByCredentials(ctx, "admin@example.com", "admin123")
	if err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if found.Name != "Admin" {
		t.Errorf("unexpected user: %+v", found)
	}

	if _, err := repo.FindByCredentials(ctx, "admin@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := repo.FindByCredentials(ctx, "ADMIN@example.com", "admin123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("email is case-sensitive: got %v, want ErrInvalidCredentials", err)
	}
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

func TestSessionStore_Lifecycle(t *testing.T) {
	sessions := NewSessionStore(newTestStore(t))
	ctx := context.Background()

	if _, err := sessions.Get(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("fresh store: got %v, want ErrNoSession", err)
	}

	user := domain.User{ID: 1, Name: "Admin User", Email: "admin@example.com", Role: domain.RoleAdmin, Avatar: "AU"}
	if err := sessions.Set(ctx, user); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := sessions.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != user {
		t.Errorf("session user = %+v, want %+v", got, user)
	}

	if err := sessions.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := sessions.Get(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("after clear: got %v, want ErrNoSession", err)
	}
	// Clearing twice is fine.
	if err := sessions.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Products
// ---------------------------------------------------------------------------

func TestProductRepository_UpdateMergesPatch(t *testing.T) {
	repo := NewProductRepository(newTestStore(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Product{
		Name:              "Gaming Laptop Pro",
		Price:             decimal.RequireFromString("1299.99"),
		SKU:               "LP-001",
		Status:            domain.StatusPublished,
		Stock:             10,
		LowStockThreshold: 5,
		Category:          "electronics",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	stock := 3
	if err := repo.Update(ctx, ports.ProductPatch{ID: created.ID, Stock: &stock}); err != nil {
		t.Fatalf("update: %v", err)
	}

	products, _ := repo.List(ctx)
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	got := products[0]
	if got.Stock != 3 {
		t.Errorf("stock = %d, want 3", got.Stock)
	}
	if got.Name != created.Name || got.SKU != created.SKU || got.Status != created.Status ||
		got.LowStockThreshold != created.LowStockThreshold || got.Category != created.Category ||
		!got.Price.Equal(created.Price) {
		t.Errorf("fields absent from the patch must be preserved: %+v", got)
	}
}

func TestProductRepository_UnknownIDIsNoOp(t *testing.T) {
	repo := NewProductRepository(newTestStore(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, domain.Product{Name: "Smart Watch", SKU: "SW-099", Status: domain.StatusDraft}); err != nil {
		t.Fatalf("create: %v", err)
	}
	before, _ := repo.List(ctx)

	if err := repo.SetStatus(ctx, 999999, domain.StatusPublished); err != nil {
		t.Fatalf("set status on unknown id must not fail: %v", err)
	}
	name := "Renamed"
	if err := repo.Update(ctx, ports.ProductPatch{ID: 999999, Name: &name}); err != nil {
		t.Fatalf("update of unknown id must not fail: %v", err)
	}

	after, _ := repo.List(ctx)
	if len(after) != len(before) {
		t.Fatalf("product count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i].Name != before[i].Name || after[i].Status != before[i].Status {
			t.Errorf("record %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestProductRepository_SetStatus(t *testing.T) {
	repo := NewProductRepository(newTestStore(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.Product{Name: "Smartphone X", SKU: "SP-128", Status: domain.StatusApproved})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.SetStatus(ctx, created.ID, domain.StatusPublished); err != nil {
		t.Fatalf("set status: %v", err)
	}
	products, _ := repo.List(ctx)
	if products[0].Status != domain.StatusPublished {
		t.Errorf("status = %q, want published", products[0].Status)
	}
}

func TestProductRepository_PricePersistsAsJSONNumber(t *testing.T) {
	store := newTestStore(t)
	repo := NewProductRepository(store)
	ctx := context.Background()

	if _, err := repo.Create(ctx, domain.Product{
		Name:  "Gaming Laptop Pro",
		Price: decimal.RequireFromString("1299.99"),
		SKU:   "LP-001",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	var raw []byte
	_ = store.db.View(func(tx *bbolt.Tx) error {
		raw = append(raw, bucket(tx).Get([]byte(keyProducts))...)
		return nil
	})
	if !strings.Contains(string(raw), `"price":1299.99`) {
		t.Errorf("price must be stored as a JSON number, got entry: %s", raw)
	}
}

// ---------------------------------------------------------------------------
// Corruption and counter recovery
// ---------------------------------------------------------------------------

func TestCorruptEntriesBehaveAsEmpty(t *testing.T) {
	store := newTestStore(t)
	users := NewUserRepository(store)
	products := NewProductRepository(store)
	sessions := NewSessionStore(store)
	ctx := context.Background()

	if _, err := users.Create(ctx, domain.User{Name: "U", Email: "u@example.com", Password: "pw"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := products.Create(ctx, domain.Product{Name: "P", SKU: "P-1"}); err != nil {
		t.Fatalf("create product: %v", err)
	}
	_ = sessions.Set(ctx, domain.User{ID: 1})

	corruptEntry(t, store, keyUsers)
	corruptEntry(t, store, keyProducts)
	corruptEntry(t, store, keySession)

	if got, err := users.List(ctx); err != nil || len(got) != 0 {
		t.Errorf("corrupt users entry: got (%v, %v), want empty list", got, err)
	}
	if got, err := products.List(ctx); err != nil || len(got) != 0 {
		t.Errorf("corrupt products entry: got (%v, %v), want empty list", got, err)
	}
	if _, err := sessions.Get(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("corrupt session entry: got %v, want ErrNoSession", err)
	}

	// The store keeps working after corruption.
	if _, err := users.Create(ctx, domain.User{Name: "V", Email: "v@example.com", Password: "pw"}); err != nil {
		t.Errorf("create after corruption: %v", err)
	}
}

func TestNextID_RecoversFromCorruptCounter(t *testing.T) {
	store := newTestStore(t)
	repo := NewProductRepository(store)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := repo.Create(ctx, domain.Product{Name: "P", SKU: "P-1"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	corruptEntry(t, store, keyProductsSeq)

	third, err := repo.Create(ctx, domain.Product{Name: "P", SKU: "P-3"})
	if err != nil {
		t.Fatalf("create after corrupt counter: %v", err)
	}
	if third.ID != 3 {
		t.Errorf("id = %d, want 3 (counter rebuilt from max existing id)", third.ID)
	}
}
