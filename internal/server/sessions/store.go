// Package sessions owns the live token→account associations created by
// sign-in and destroyed by sign-out.
package sessions

import "context"

// Store is the capability set of the session store.
//
// Sessions are keyed by token, so an account may hold any number of
// concurrent sessions; a new sign-in never invalidates earlier tokens.
type Store interface {
	// Issue mints a fresh opaque token authenticating accountID.
	Issue(ctx context.Context, accountID string) (string, error)

	// Revoke removes the token. Unknown tokens are a no-op; the operation
	// is idempotent. Revoked tokens are never reused.
	Revoke(ctx context.Context, token string) error

	// RevokeAccount removes every live session of the account. Used to
	// cascade an account deletion so no orphaned token stays valid.
	RevokeAccount(ctx context.Context, accountID string) error

	// Owner returns the account a live token authenticates, or
	// common.ErrorNotFound. Intended for transport-side request
	// authorization.
	Owner(ctx context.Context, token string) (string, error)
}
