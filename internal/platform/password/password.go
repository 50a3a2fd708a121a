// Package password provides bcrypt hashing and verification of user passwords.
// Plaintext passwords never leave this package once hashed.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DummyHash is a valid bcrypt hash of a throwaway string. Login compares
// against it when the email is unknown so that the bcrypt cost is paid on
// every attempt, keeping response timing flat.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hash returns the bcrypt hash of the given plaintext. The hash is salted, so
// equal plaintexts produce distinct hashes that both verify.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the given bcrypt hash.
func Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
