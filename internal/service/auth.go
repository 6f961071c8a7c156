package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/webmob/auth-api/internal/apperror"
	"github.com/webmob/auth-api/internal/logger"
	"github.com/webmob/auth-api/internal/model"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// Auth orchestrates signup, login and identity lookups against the
// credential store, password hasher and token manager.
type Auth struct {
	users        model.UserStore
	hasher       model.PasswordHasher
	tokens       model.TokenManager
	logger       *logger.Logger
	storeTimeout time.Duration
}

func NewAuth(
	users model.UserStore,
	hasher model.PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
	storeTimeout time.Duration,
) *Auth {
	return &Auth{
		users:        users,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
		storeTimeout: storeTimeout,
	}
}

// Signup validates the request, creates the user record and issues a token.
// Uniqueness is enforced by the store, so a concurrent signup racing past the
// existence check still fails with a conflict rather than a duplicate.
func (a *Auth) Signup(ctx context.Context, req model.SignupRequest) (*model.AuthResponse, error) {
	a.logger.Debug("Auth service: starting signup", "email", req.Email)

	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if err := validateSignup(name, email, req.Password); err != nil {
		return nil, err
	}

	storeCtx, cancel := a.storeContext(ctx)
	defer cancel()

	_, err := a.users.GetByEmail(storeCtx, email)
	if err == nil {
		a.logger.Info("Auth service: email already in use", "email", email)
		return nil, apperror.NewConflict("Email already in use")
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return nil, a.storeError(err)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := a.users.Create(storeCtx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return nil, apperror.NewConflict("Email already in use")
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return nil, a.storeError(err)
	}

	tokenString, err := a.tokens.Generate(created)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: signup completed", "user_id", created.ID)

	return &model.AuthResponse{
		Token: tokenString,
		User:  created.Public(),
	}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same generic failure so accounts cannot be enumerated.
func (a *Auth) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	a.logger.Debug("Auth service: starting login", "email", req.Email)

	email := normalizeEmail(req.Email)

	if err := validateLogin(email, req.Password); err != nil {
		return nil, err
	}

	storeCtx, cancel := a.storeContext(ctx)
	defer cancel()

	user, err := a.users.GetByEmail(storeCtx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, apperror.NewInvalidCredentials()
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return nil, a.storeError(err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperror.NewInvalidCredentials()
	}

	tokenString, err := a.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed", "user_id", user.ID)

	return &model.AuthResponse{
		Token: tokenString,
		User:  user.Public(),
	}, nil
}

// WhoAmI re-fetches the user record by ID so the response reflects current
// stored data rather than the token snapshot.
func (a *Auth) WhoAmI(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	storeCtx, cancel := a.storeContext(ctx)
	defer cancel()

	user, err := a.users.GetByID(storeCtx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, apperror.NewNotFound("User not found")
		}
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", userID,
			"error", err.Error())
		return nil, a.storeError(err)
	}

	return &model.UserResponse{User: user.Public()}, nil
}

func (a *Auth) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.storeTimeout)
}

// storeError converts store failures into the client-facing taxonomy.
// Timeouts and connection errors surface as a generic unavailability.
func (a *Auth) storeError(err error) error {
	return apperror.NewUnavailable(err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateSignup reports the first violated constraint.
func validateSignup(name, email, password string) error {
	if name == "" {
		return apperror.NewValidation("Name required")
	}
	if !validEmail(email) {
		return apperror.NewValidation("Invalid email")
	}
	if len(password) < minPasswordLength {
		return apperror.NewValidation("Password must be at least 6 characters")
	}
	return nil
}

func validateLogin(email, password string) error {
	if !validEmail(email) {
		return apperror.NewValidation("Invalid email")
	}
	if len(password) < minPasswordLength {
		return apperror.NewValidation("Password must be at least 6 characters")
	}
	return nil
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
