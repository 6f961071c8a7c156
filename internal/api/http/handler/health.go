package handler

import (
	"net/http"
	"time"
)

// Health handles liveness and service info endpoints.
type Health struct {
	version   string
	endpoints []string
}

// NewHealth creates a new Health handler. version is the build version
// reported by the root endpoint; endpoints is the advertised route list.
func NewHealth(version string, endpoints []string) *Health {
	return &Health{version: version, endpoints: endpoints}
}

// Healthz handles GET /healthz. Liveness only, no dependency checks.
func (h *Health) Healthz(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Root handles GET / with a service info envelope.
func (h *Health) Root(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"name":      "webmob-auth-api",
		"version":   h.version,
		"time":      time.Now().UTC().Format(time.RFC3339),
		"endpoints": h.endpoints,
	})
}

// NotFound handles any unknown route.
func (h *Health) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusNotFound, errorResponse{Error: "Not found", Path: r.URL.Path})
}

// MethodNotAllowed handles known routes hit with the wrong method.
func (h *Health) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed", Path: r.URL.Path})
}
