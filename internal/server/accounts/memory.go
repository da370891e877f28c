package accounts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MateusHBR/auth-microservice/internal/common"
	"github.com/MateusHBR/auth-microservice/internal/cryptox"
	"github.com/google/uuid"
)

// InMemoryStore keeps accounts in two indices (by id and by username)
// guarded by a single coarse-grained mutex. State is volatile and lives for
// the process lifetime only.
type InMemoryStore struct {
	mu         sync.Mutex
	byID       map[string]*Account
	byUsername map[string]*Account
	iterations int
}

func NewInMemoryStore(hashIterations int) *InMemoryStore {
	return &InMemoryStore{
		byID:       make(map[string]*Account),
		byUsername: make(map[string]*Account),
		iterations: hashIterations,
	}
}

// Create hashes the password and inserts the account into both indices
// under the lock, so the duplicate check and the insert are atomic: two
// racing Create calls for the same username cannot both succeed, and both
// indices are updated or neither is.
func (s *InMemoryStore) Create(ctx context.Context, username string, password []byte) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[username]; exists {
		return nil, common.ErrorDuplicateUsername
	}

	hash, err := cryptox.HashPassword(password, s.iterations)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account := &Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	s.byID[account.ID] = account
	s.byUsername[account.Username] = account

	created := *account
	return &created, nil
}

func (s *InMemoryStore) Authenticate(ctx context.Context, username string, password []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.byUsername[username]
	if !ok {
		return "", common.ErrorUnauthorized
	}

	match, err := cryptox.VerifyPassword(password, account.PasswordHash)
	if err != nil {
		// A stored hash that cannot be parsed is an internal fault, not a
		// credential problem.
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	if !match {
		return "", common.ErrorUnauthorized
	}

	return account.ID, nil
}

func (s *InMemoryStore) Delete(ctx context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.byID[accountID]
	if !ok {
		return nil
	}

	delete(s.byUsername, account.Username)
	delete(s.byID, accountID)
	return nil
}
