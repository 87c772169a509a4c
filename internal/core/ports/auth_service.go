package ports

import (
	"context"

	"github.com/shoplite/storefront-admin/internal/core/domain"
)

// RegisterInput carries all data needed to sign up a new account.
// Department is required when Role is a staff role and is discarded for
// customers; that rule is enforced by the service, not a tag.
type RegisterInput struct {
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required,min=8"`
	Role       string `validate:"required,oneof=admin agent customer"`
	Department string
	// Avatar is optional; when empty the initials of Name are used.
	Avatar string
}

// AuthService defines the signup/login/logout workflow. Register and Login
// set the session pointer on success; Logout clears it.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	// Current returns the session user, or ErrNoSession when nobody is
	// authenticated.
	Current(ctx context.Context) (*domain.User, error)
}
