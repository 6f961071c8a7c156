package model

// PasswordHasher hashes plaintext passwords and verifies them against
// stored hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}
