// Package accounts owns identity records: it enforces username uniqueness
// and hashes and verifies passwords.
package accounts

import "context"

// Store is the capability set of the account store.
type Store interface {
	// Create registers a new account. It returns
	// common.ErrorDuplicateUsername when the username is already taken.
	Create(ctx context.Context, username string, password []byte) (*Account, error)

	// Authenticate verifies the credentials and returns the account id on
	// success. Unknown username and wrong password are deliberately
	// indistinguishable: both return common.ErrorUnauthorized.
	Authenticate(ctx context.Context, username string, password []byte) (string, error)

	// Delete removes the account from every index. Unknown ids are a no-op;
	// the operation is idempotent.
	Delete(ctx context.Context, accountID string) error
}
