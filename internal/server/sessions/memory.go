package sessions

import (
	"context"
	"sync"

	"github.com/MateusHBR/auth-microservice/internal/common"
	"github.com/google/uuid"
)

// InMemoryStore maps tokens to account ids under a single coarse-grained
// mutex. The reverse index supports RevokeAccount without a full scan.
type InMemoryStore struct {
	mu        sync.Mutex
	byToken   map[string]string
	byAccount map[string]map[string]struct{}
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byToken:   make(map[string]string),
		byAccount: make(map[string]map[string]struct{}),
	}
}

func (s *InMemoryStore) Issue(ctx context.Context, accountID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A v4 uuid is 128 bits of randomness; collisions are not a practical
	// concern, so Issue cannot conflict.
	token := uuid.NewString()

	s.byToken[token] = accountID
	tokens, ok := s.byAccount[accountID]
	if !ok {
		tokens = make(map[string]struct{})
		s.byAccount[accountID] = tokens
	}
	tokens[token] = struct{}{}

	return token, nil
}

func (s *InMemoryStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accountID, ok := s.byToken[token]
	if !ok {
		return nil
	}

	delete(s.byToken, token)
	if tokens, ok := s.byAccount[accountID]; ok {
		delete(tokens, token)
		if len(tokens) == 0 {
			delete(s.byAccount, accountID)
		}
	}
	return nil
}

func (s *InMemoryStore) RevokeAccount(ctx context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token := range s.byAccount[accountID] {
		delete(s.byToken, token)
	}
	delete(s.byAccount, accountID)
	return nil
}

func (s *InMemoryStore) Owner(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accountID, ok := s.byToken[token]
	if !ok {
		return "", common.ErrorNotFound
	}
	return accountID, nil
}
