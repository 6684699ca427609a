package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yatraflow/yatraflow/internal/auth"
	"github.com/yatraflow/yatraflow/internal/config"
	"github.com/yatraflow/yatraflow/internal/domain"
	"github.com/yatraflow/yatraflow/internal/repository"
	"github.com/yatraflow/yatraflow/pkg/util"
)

// AuthService coordinates signup, login, logout and session state.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		logger:     logger,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Signup creates a new account. Public signups always get the user role;
// email uniqueness is case-insensitive.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" || strings.TrimSpace(name) == "" {
		return nil, util.NewValidationError("name, email and password are required", nil)
	}
	if _, exists := s.users.FindByEmail(email); exists {
		return nil, util.NewDuplicateEmail(email)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, util.NewInternalError(err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("account created", zap.String("user_id", user.ID))
	return &user, nil
}

// Login verifies credentials, saves the session mirror and issues a token.
// Failures are uniform: the caller cannot tell an unknown email from a
// wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, ok := s.users.FindByEmail(email)
	if !ok {
		return nil, "", time.Time{}, util.NewInvalidCredentials()
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, util.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, util.NewInternalError(err)
	}

	s.users.SaveSession(ctx, domain.Session{User: user, IsAuthenticated: true})
	return user, token, exp, nil
}

// Logout clears the persisted session only; accounts are untouched.
func (s *AuthService) Logout(ctx context.Context) {
	s.users.ClearSession(ctx)
}

// CurrentSession reads the persisted session mirror.
func (s *AuthService) CurrentSession() domain.Session {
	return s.users.CurrentSession()
}

// EnsureBootstrapAdmin seeds one admin account when no accounts exist, so
// the role-gated surface is reachable on a fresh store.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, cfg config.AuthConfig) error {
	if len(s.users.ListUsers()) > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.BootstrapAdminPass, s.bcryptCost)
	if err != nil {
		return err
	}
	admin := domain.User{
		ID:           uuid.NewString(),
		Name:         cfg.BootstrapAdminName,
		Email:        cfg.BootstrapAdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := s.users.CreateUser(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("bootstrap admin created", zap.String("email", admin.Email))
	return nil
}
