// Package context manages the authenticated identity in request context.
package context

import (
	"context"

	"github.com/webmob/auth-api/internal/model"
)

type contextKey int

// identityKey is the context key under which the verified identity is stored.
const identityKey contextKey = iota

var _ model.ContextManager = (*Manager)(nil)

// Manager stores and retrieves the verified identity using context values.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a child context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext retrieves the identity set by the request gate.
// The boolean reports whether an identity was present.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}
