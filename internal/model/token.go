package model

import "github.com/google/uuid"

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	Generate(user User) (string, error)
	Parse(token string) (Identity, error)
}

// Identity is the verified identity carried by a bearer token.
// It is a snapshot taken at issuance; handlers that need current data
// re-fetch the user record by ID.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Name   string
}
