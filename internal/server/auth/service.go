// Package auth implements the authentication facade: it orchestrates the
// account and session stores behind the three public operations and is the
// single translation point between store errors and caller-visible
// outcomes.
package auth

import (
	"context"

	"github.com/MateusHBR/auth-microservice/internal/common"
	"github.com/MateusHBR/auth-microservice/internal/server/accounts"
	"github.com/MateusHBR/auth-microservice/internal/server/sessions"
)

// Session is the result of a successful sign-in.
type Session struct {
	AccountID string
	Token     string
}

// Service holds references to the two stores and no state of its own.
type Service struct {
	accounts accounts.Store
	sessions sessions.Store
}

func NewService(accountStore accounts.Store, sessionStore sessions.Store) *Service {
	return &Service{accounts: accountStore, sessions: sessionStore}
}

// SignUp registers a new account. The password slice is wiped before
// returning.
func (s *Service) SignUp(ctx context.Context, username string, password []byte) error {
	defer common.WipeByteArray(password)

	_, err := s.accounts.Create(ctx, username, password)
	return err
}

// SignIn verifies the credentials and, on success, issues a session token.
// Every failure surfaces as common.ErrorUnauthorized so that an unknown
// username and a wrong password remain indistinguishable. The password
// slice is wiped before returning.
//
// Authenticate and Issue take the two store locks in sequence, not
// together; an account deleted between the two steps can still receive a
// token. The administrative delete cascades session revocation, which
// closes that window after the fact.
func (s *Service) SignIn(ctx context.Context, username string, password []byte) (*Session, error) {
	defer common.WipeByteArray(password)

	accountID, err := s.accounts.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Issue(ctx, accountID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Session{AccountID: accountID, Token: token}, nil
}

// SignOut revokes the token. Revoking an unknown or already revoked token
// is not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// DeleteAccount removes the account and revokes all of its live sessions.
// It is idempotent and not reachable from the public RPC surface.
func (s *Service) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accounts.Delete(ctx, accountID); err != nil {
		return err
	}
	return s.sessions.RevokeAccount(ctx, accountID)
}
