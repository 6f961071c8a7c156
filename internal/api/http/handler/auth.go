package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/webmob/auth-api/internal/apperror"
	"github.com/webmob/auth-api/internal/logger"
	"github.com/webmob/auth-api/internal/model"
)

// AuthService defines signup, login and identity lookup operations.
type AuthService interface {
	Signup(ctx context.Context, req model.SignupRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	WhoAmI(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles POST /auth/signup.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, h.logger, apperror.NewValidation("Invalid request body"))
		return
	}
	defer r.Body.Close()

	h.logger.Debug("Auth handler: processing signup request", "email", req.Email)

	resp, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: signup completed", "user_id", resp.User.ID)

	WriteJSON(w, http.StatusCreated, resp)
}

// Login handles POST /auth/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, h.logger, apperror.NewValidation("Invalid request body"))
		return
	}
	defer r.Body.Close()

	h.logger.Debug("Auth handler: processing login request", "email", req.Email)

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: login completed", "user_id", resp.User.ID)

	WriteJSON(w, http.StatusOK, resp)
}
