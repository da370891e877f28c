package accounts

import "time"

// Account is a registered identity. ID is assigned at creation and never
// reused; Username is immutable (there is no rename operation).
// PasswordHash is a PHC string produced by cryptox; the plaintext password
// is never stored.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
