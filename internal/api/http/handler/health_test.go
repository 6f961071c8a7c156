package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_Healthz(t *testing.T) {
	t.Parallel()

	h := NewHealth("1.0.0", nil)

	rec := httptest.NewRecorder()
	h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealth_Root(t *testing.T) {
	t.Parallel()

	h := NewHealth("1.2.3", []string{"/auth/signup", "/auth/login", "/me", "/healthz"})

	rec := httptest.NewRecorder()
	h.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "webmob-auth-api", body["name"])
	assert.Equal(t, "1.2.3", body["version"])
	assert.Len(t, body["endpoints"], 4)

	ts, err := time.Parse(time.RFC3339, body["time"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestHealth_NotFound(t *testing.T) {
	t.Parallel()

	h := NewHealth("1.0.0", nil)

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found","path":"/nope"}`, rec.Body.String())
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := NewHealth("1.0.0", nil)

	rec := httptest.NewRecorder()
	h.MethodNotAllowed(rec, httptest.NewRequest(http.MethodDelete, "/auth/login", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed","path":"/auth/login"}`, rec.Body.String())
}
