package bolt

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/shoplite/storefront-admin/internal/core/domain"
)

// SessionStore keeps the single current-user entry: a value copy of one
// user record, or nothing.
type SessionStore struct {
	store *Store
}

func NewSessionStore(store *Store) *SessionStore {
	return &SessionStore{store: store}
}

// Set persists user as the current session.
func (s *SessionStore) Set(_ context.Context, user domain.User) error {
	err := s.store.db.Update(func(tx *bbolt.Tx) error {
		return putJSON(bucket(tx), keySession, user)
	})
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Get returns the session user. An absent or corrupt entry means nobody is
// authenticated: ErrNoSession, never a crash.
func (s *SessionStore) Get(_ context.Context) (*domain.User, error) {
	var found *domain.User
	err := s.store.db.View(func(tx *bbolt.Tx) error {
		raw := bucket(tx).Get([]byte(keySession))
		if len(raw) == 0 {
			return nil
		}
		var u domain.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil
		}
		found = &u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if found == nil {
		return nil, domain.ErrNoSession
	}
	return found, nil
}

// Clear removes the session entry. Clearing an absent session is a no-op.
func (s *SessionStore) Clear(_ context.Context) error {
	err := s.store.db.Update(func(tx *bbolt.Tx) error {
		return bucket(tx).Delete([]byte(keySession))
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
