// Package hash provides one-way password hashing.
package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/webmob/auth-api/internal/model"
)

// cost is the bcrypt work factor. Fixed for all stored hashes.
const cost = 12

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher using the bcrypt KDF.
type Bcrypt struct{}

// NewBcrypt creates a bcrypt password hasher.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{}
}

// Hash derives a salted one-way hash from the plaintext password.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash.
func (b *Bcrypt) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
