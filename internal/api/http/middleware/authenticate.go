package middleware

import (
	"net/http"
	"strings"

	"github.com/webmob/auth-api/internal/api/http/handler"
	"github.com/webmob/auth-api/internal/apperror"
	"github.com/webmob/auth-api/internal/logger"
	"github.com/webmob/auth-api/internal/model"
)

// bearerPrefix is the expected Authorization header scheme.
const bearerPrefix = "Bearer "

// Authenticate is the gate in front of protected endpoints. It extracts and
// verifies the bearer token and attaches the identity to the request context;
// the wrapped handler never runs on failure.
type Authenticate struct {
	tokens         model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle wraps next with bearer token verification.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			handler.WriteError(w, m.logger, apperror.NewUnauthorized("Missing token", nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if tokenString == "" {
			handler.WriteError(w, m.logger, apperror.NewUnauthorized("Missing token", nil))
			return
		}

		identity, err := m.tokens.Parse(tokenString)
		if err != nil {
			handler.WriteError(w, m.logger, apperror.NewUnauthorized("Invalid token", err))
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
