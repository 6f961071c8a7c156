package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/webmob/auth-api/internal/api/http/context"
	"github.com/webmob/auth-api/internal/mocks"
	"github.com/webmob/auth-api/internal/model"
	"github.com/webmob/auth-api/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	validIdentity := model.Identity{UserID: uuid.New(), Email: "jane@x.com", Name: "Jane"}

	tests := []struct {
		name        string
		authHeader  string
		parseErr    error
		wantStatus  int
		wantMessage string
		wantNext    bool
	}{
		{
			name:        "missing authorization header",
			authHeader:  "",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing token",
			wantNext:    false,
		},
		{
			name:        "wrong scheme",
			authHeader:  "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing token",
			wantNext:    false,
		},
		{
			name:        "empty bearer token",
			authHeader:  "Bearer ",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing token",
			wantNext:    false,
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer invalid",
			parseErr:    assert.AnError,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
			wantNext:    false,
		},
		{
			name:       "valid token",
			authHeader: "Bearer token",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := &mocks.TokenManager{}
			if tt.parseErr != nil {
				tokens.On("Parse", "invalid").Return(model.Identity{}, tt.parseErr)
			} else {
				tokens.On("Parse", "token").Return(validIdentity, nil)
			}

			cm := httpctx.NewManager()
			m := NewAuthenticate(tokens, cm, testutil.MakeNoopLogger())

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				identity, ok := cm.GetIdentityFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, validIdentity, identity)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)

			if tt.wantMessage != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantMessage, body["error"])
			}
		})
	}
}
