package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/shoplite/storefront-admin/internal/core/domain"
	"github.com/shoplite/storefront-admin/internal/core/ports"
	"github.com/shoplite/storefront-admin/internal/metrics"
)

// AuthService implements signup, login and logout against the persisted
// user list and the session pointer.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		validate: validator.New(),
		log:      log,
	}
}

// Register creates a new account and starts its session. The repository
// accepts duplicate emails silently, so uniqueness is enforced here, at the
// workflow boundary.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := checkInput(s.validate, input); err != nil {
		return nil, err
	}

	role := domain.Role(input.Role)
	if role.IsStaff() && input.Department == "" {
		return nil, fmt.Errorf("%w: department is required for staff roles", domain.ErrInvalidInput)
	}

	// Duplicate email check: linear scan, same as the login lookup.
	existing, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	for _, u := range existing {
		if u.Email == input.Email {
			return nil, domain.ErrEmailTaken
		}
	}

	var draft domain.User
	if role.IsStaff() {
		draft, err = domain.NewStaffUser(input.Name, input.Email, input.Password, role, input.Department)
		if err != nil {
			return nil, err
		}
	} else {
		draft = domain.NewCustomer(input.Name, input.Email, input.Password)
	}
	if input.Avatar != "" {
		draft.Avatar = input.Avatar
	}

	created, err := s.users.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	if err := s.sessions.Set(ctx, created); err != nil {
		return nil, fmt.Errorf("register: start session: %w", err)
	}

	metrics.SignupsTotal.WithLabelValues(string(created.Role)).Inc()
	s.log.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("account created")

	return &created, nil
}

// Login matches credentials exactly and starts the session. A miss returns
// ErrInvalidCredentials; the caller presents it as "invalid email or
// password".
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			s.log.Debug().Str("email", email).Msg("login rejected")
		}
		return nil, err
	}

	if err := s.sessions.Set(ctx, *user); err != nil {
		return nil, fmt.Errorf("login: start session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("user_id", user.ID).Msg("login successful")

	return user, nil
}

// Logout clears the session pointer. Logging out with no session is fine.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Msg("logged out")
	return nil
}

// Current returns the session user, or ErrNoSession.
func (s *AuthService) Current(ctx context.Context) (*domain.User, error) {
	return s.sessions.Get(ctx)
}
