package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_StatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", NewValidation("Name required"), http.StatusBadRequest},
		{"conflict", NewConflict("Email already in use"), http.StatusConflict},
		{"invalid credentials", NewInvalidCredentials(), http.StatusUnauthorized},
		{"unauthorized", NewUnauthorized("Missing token", nil), http.StatusUnauthorized},
		{"not found", NewNotFound("User not found"), http.StatusNotFound},
		{"unavailable", NewUnavailable(assert.AnError), http.StatusServiceUnavailable},
		{"internal", NewInternal(assert.AnError), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUnavailable(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFrom(t *testing.T) {
	appErr, ok := From(NewConflict("Email already in use"))
	require.True(t, ok)
	assert.Equal(t, KindConflict, appErr.Kind)

	wrapped := fmt.Errorf("handling request: %w", NewValidation("Invalid email"))
	appErr, ok = From(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindValidation, appErr.Kind)

	_, ok = From(errors.New("plain"))
	assert.False(t, ok)

	_, ok = From(nil)
	assert.False(t, ok)
}

func TestNewInvalidCredentials_GenericMessage(t *testing.T) {
	assert.Equal(t, "Invalid credentials", NewInvalidCredentials().Message)
}
