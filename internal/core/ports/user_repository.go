package ports

import (
	"context"

	"github.com/shoplite/storefront-admin/internal/core/domain"
)

// UserRepository defines persistence operations for the user list.
type UserRepository interface {
	// List returns all users in insertion order. An absent or corrupt
	// users entry behaves as an empty list, never an error.
	List(ctx context.Context) ([]domain.User, error)
	// Create assigns a fresh id to the draft, appends it and returns the
	// stored record. Email uniqueness is NOT checked here: that belongs
	// to the registration workflow.
	Create(ctx context.Context, draft domain.User) (domain.User, error)
	// FindByCredentials returns the first user whose email and password
	// both match exactly (case-sensitive), or ErrInvalidCredentials.
	// A miss is a normal outcome, not a storage failure.
	FindByCredentials(ctx context.Context, email, password string) (*domain.User, error)
}

// SessionStore holds the single "who is logged in" pointer: a value copy of
// one user record, or nothing.
type SessionStore interface {
	Set(ctx context.Context, user domain.User) error
	// Get returns the current session user, or ErrNoSession when the
	// pointer was never set or has been cleared.
	Get(ctx context.Context) (*domain.User, error)
	Clear(ctx context.Context) error
}
