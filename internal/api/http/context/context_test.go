package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webmob/auth-api/internal/model"
)

func TestManager_SetAndGetIdentity(t *testing.T) {
	m := NewManager()

	identity := model.Identity{UserID: uuid.New(), Email: "jane@x.com", Name: "Jane"}
	ctx := m.SetIdentityToContext(context.Background(), identity)

	got, ok := m.GetIdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestManager_GetIdentity_Empty(t *testing.T) {
	m := NewManager()

	_, ok := m.GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}
