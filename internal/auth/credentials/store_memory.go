// Package credentials provides the credential lookup used by the auth
// service. The lookup is an interface so the seeded in-memory table can be
// swapped for real user management later without touching the auth flow.
package credentials

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"healthregistry/internal/auth/models"
	"healthregistry/pkg/platform/sentinel"
)

// Store resolves a username to a credential record.
type Store interface {
	Lookup(ctx context.Context, username string) (*models.User, error)
}

// Seed describes one user to load into the in-memory store. The plaintext
// password is hashed at construction and discarded.
type Seed struct {
	Username string
	FullName string
	Password string
	Role     string
}

// Error Contract:
// - Lookup returns a wrapped sentinel.ErrNotFound when the username is absent
// - Lookup returns nil error with the stored record otherwise
// InMemoryStore is a fixed credential table. It is read-only after
// construction, so lookups need no locking.
type InMemoryStore struct {
	users map[string]*models.User
}

// NewInMemory builds a credential store from seeds, bcrypt-hashing each
// password.
func NewInMemory(seeds ...Seed) (*InMemoryStore, error) {
	users := make(map[string]*models.User, len(seeds))
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password for %q: %w", seed.Username, err)
		}
		users[seed.Username] = &models.User{
			Username:     seed.Username,
			FullName:     seed.FullName,
			PasswordHash: string(hash),
			Role:         seed.Role,
		}
	}
	return &InMemoryStore{users: users}, nil
}

func (s *InMemoryStore) Lookup(_ context.Context, username string) (*models.User, error) {
	if user, ok := s.users[username]; ok {
		return user, nil
	}
	return nil, fmt.Errorf("user %q: %w", username, sentinel.ErrNotFound)
}
