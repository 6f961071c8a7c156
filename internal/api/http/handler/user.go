package handler

import (
	"net/http"

	"github.com/webmob/auth-api/internal/apperror"
	"github.com/webmob/auth-api/internal/logger"
	"github.com/webmob/auth-api/internal/model"
)

// User handles HTTP endpoints for the authenticated user.
type User struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Me handles GET /me. The request gate has already verified the token; the
// user record is re-fetched so the response reflects current stored data.
func (h *User) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, h.logger, apperror.NewUnauthorized("Missing token", nil))
		return
	}

	resp, err := h.authService.WhoAmI(r.Context(), identity.UserID)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
