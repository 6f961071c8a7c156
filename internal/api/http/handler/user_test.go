package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/webmob/auth-api/internal/api/http/context"
	"github.com/webmob/auth-api/internal/mocks"
	"github.com/webmob/auth-api/internal/model"
	"github.com/webmob/auth-api/internal/testutil"
)

func TestUser_Me(t *testing.T) {
	t.Parallel()

	svc := &mocks.AuthService{}
	cm := httpctx.NewManager()
	lg := testutil.MakeNoopLogger()

	userID := uuid.New()
	svc.On("WhoAmI", mock.Anything, userID).
		Return(&model.UserResponse{User: model.PublicUser{ID: userID, Name: "Jane", Email: "jane@x.com"}}, nil)

	h := NewUser(svc, cm, lg)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	ctx := cm.SetIdentityToContext(req.Context(), model.Identity{UserID: userID, Email: "jane@x.com", Name: "Jane"})
	rec := httptest.NewRecorder()

	h.Me(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user := body["user"].(map[string]any)
	assert.Equal(t, userID.String(), user["id"])
}

func TestUser_Me_NoIdentity(t *testing.T) {
	t.Parallel()

	svc := &mocks.AuthService{}
	cm := httpctx.NewManager()
	h := NewUser(svc, cm, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Missing token", body["error"])
	svc.AssertNotCalled(t, "WhoAmI")
}
