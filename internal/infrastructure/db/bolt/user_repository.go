package bolt

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/shoplite/storefront-admin/internal/core/domain"
)

// UserRepository stores the user list as a single JSON array entry.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// List returns all users in insertion order.
func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.store.db.View(func(tx *bbolt.Tx) error {
		users = decodeList[domain.User](bucket(tx), keyUsers)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create assigns the next id to the draft, appends it to the users entry
// and returns the stored record. Duplicate emails are accepted silently;
// uniqueness belongs to the registration workflow.
func (r *UserRepository) Create(_ context.Context, draft domain.User) (domain.User, error) {
	err := r.store.db.Update(func(tx *bbolt.Tx) error {
		b := bucket(tx)
		users := decodeList[domain.User](b, keyUsers)

		var maxID int64
		for _, u := range users {
			if u.ID > maxID {
				maxID = u.ID
			}
		}
		id, err := nextID(b, keyUsersSeq, maxID)
		if err != nil {
			return err
		}

		draft.ID = id
		return putJSON(b, keyUsers, append(users, draft))
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return draft, nil
}

// FindByCredentials scans the user list for an exact, case-sensitive match
// on both email and password. A miss returns ErrInvalidCredentials; it is a
// normal outcome, not a storage failure.
func (r *UserRepository) FindByCredentials(_ context.Context, email, password string) (*domain.User, error) {
	var found *domain.User
	err := r.store.db.View(func(tx *bbolt.Tx) error {
		for _, u := range decodeList[domain.User](bucket(tx), keyUsers) {
			if u.Email == email && u.Password == password {
				clone := u
				found = &clone
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if found == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return found, nil
}
