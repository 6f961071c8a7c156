package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/webmob/auth-api/internal/model"
)

// ContextManager is a mock implementation of model.ContextManager.
type ContextManager struct {
	mock.Mock
}

func (m *ContextManager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	args := m.Called(ctx, identity)
	return args.Get(0).(context.Context)
}

func (m *ContextManager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	args := m.Called(ctx)
	return args.Get(0).(model.Identity), args.Bool(1)
}
