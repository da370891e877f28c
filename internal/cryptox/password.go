// Package cryptox implements password hashing for the account store.
//
// Hashes are stored as self-describing PHC strings,
//
//	$pbkdf2-sha256$i=600000$<salt>$<digest>
//
// where salt and digest are base64-encoded without padding. Verification
// reads the parameters back from the stored string, so the work factor can
// be changed without invalidating existing hashes.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor used for new hashes.
	DefaultIterations = 600_000

	algorithmID = "pbkdf2-sha256"
	saltLength  = 16
	keyLength   = 32
)

var (
	ErrMalformedHash        = errors.New("malformed password hash")
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
)

// b64 is the PHC flavor of base64: standard alphabet, no padding.
var b64 = base64.RawStdEncoding

// HashPassword derives a PBKDF2-SHA256 hash of password with a fresh random
// salt and returns it in PHC string form. iterations must be positive;
// DefaultIterations is a sensible choice for production use.
func HashPassword(password []byte, iterations int) (string, error) {
	if iterations <= 0 {
		return "", fmt.Errorf("invalid iteration count %d", iterations)
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	digest := pbkdf2.Key(password, salt, iterations, keyLength, sha256.New)

	encoded := fmt.Sprintf("$%s$i=%d$%s$%s",
		algorithmID, iterations, b64.EncodeToString(salt), b64.EncodeToString(digest))
	return encoded, nil
}

// VerifyPassword re-derives the hash of password using the salt and
// parameters stored in encoded and compares it against the stored digest in
// constant time. It returns true only on an exact match; an error indicates
// that encoded is not a valid hash string, never a wrong password.
func VerifyPassword(password []byte, encoded string) (bool, error) {
	iterations, salt, digest, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := pbkdf2.Key(password, salt, iterations, len(digest), sha256.New)
	return subtle.ConstantTimeCompare(candidate, digest) == 1, nil
}

func decodeHash(encoded string) (iterations int, salt, digest []byte, err error) {
	// Expected: "" | algorithm | params | salt | digest
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "" {
		return 0, nil, nil, ErrMalformedHash
	}
	if parts[1] != algorithmID {
		return 0, nil, nil, ErrUnsupportedAlgorithm
	}

	iterStr, ok := strings.CutPrefix(parts[2], "i=")
	if !ok {
		return 0, nil, nil, ErrMalformedHash
	}
	iterations, err = strconv.Atoi(iterStr)
	if err != nil || iterations <= 0 {
		return 0, nil, nil, ErrMalformedHash
	}

	salt, err = b64.DecodeString(parts[3])
	if err != nil {
		return 0, nil, nil, ErrMalformedHash
	}
	digest, err = b64.DecodeString(parts[4])
	if err != nil || len(digest) == 0 {
		return 0, nil, nil, ErrMalformedHash
	}

	return iterations, salt, digest, nil
}
