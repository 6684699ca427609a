package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yatraflow/yatraflow/internal/config"
	"github.com/yatraflow/yatraflow/internal/domain"
	"github.com/yatraflow/yatraflow/internal/persistence"
	"github.com/yatraflow/yatraflow/internal/repository"
	"github.com/yatraflow/yatraflow/pkg/util"
)

func newTestAuthService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 5
	cfg.Auth.BcryptCost = 4 // min cost keeps tests fast

	users := repository.NewUserRepository(context.Background(), persistence.NewMemoryStore(), zap.NewNop())
	return NewAuthService(cfg, users, zap.NewNop()), users
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "asha@example.com", "secret123", "Asha")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())

	loggedIn, token, exp, err := svc.Login(ctx, "ASHA@example.COM", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Equal(t, domain.RoleUser, loggedIn.Role)
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "asha@example.com", "secret123", "Asha")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Asha@Example.com", "other", "Imposter")
	require.Error(t, err)
	assert.True(t, util.IsCode(err, "DUPLICATE_EMAIL"))
	assert.Len(t, users.ListUsers(), 1)
}

func TestAuthService_LoginFailuresAreUniform(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "asha@example.com", "secret123", "Asha")
	require.NoError(t, err)

	_, _, _, wrongPass := svc.Login(ctx, "asha@example.com", "wrong")
	require.Error(t, wrongPass)
	assert.True(t, util.IsCode(wrongPass, "INVALID_CREDENTIALS"))

	_, _, _, unknownEmail := svc.Login(ctx, "nobody@example.com", "secret123")
	require.Error(t, unknownEmail)
	assert.True(t, util.IsCode(unknownEmail, "INVALID_CREDENTIALS"))

	// identical surface for both failure modes
	assert.Equal(t, wrongPass.Error(), unknownEmail.Error())
}

func TestAuthService_SessionLifecycle(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "asha@example.com", "secret123", "Asha")
	require.NoError(t, err)

	assert.False(t, svc.CurrentSession().IsAuthenticated)

	_, _, _, err = svc.Login(ctx, "asha@example.com", "secret123")
	require.NoError(t, err)

	session := svc.CurrentSession()
	require.True(t, session.IsAuthenticated)
	assert.Equal(t, "asha@example.com", session.User.Email)

	svc.Logout(ctx)
	assert.False(t, svc.CurrentSession().IsAuthenticated)
}

func TestAuthService_EnsureBootstrapAdmin(t *testing.T) {
	svc, users := newTestAuthService(t)
	ctx := context.Background()

	authCfg := config.AuthConfig{
		BootstrapAdminEmail: "admin@yatraflow.local",
		BootstrapAdminName:  "Admin",
		BootstrapAdminPass:  "admin123",
	}
	require.NoError(t, svc.EnsureBootstrapAdmin(ctx, authCfg))
	require.Len(t, users.ListUsers(), 1)
	assert.Equal(t, domain.RoleAdmin, users.ListUsers()[0].Role)

	// second call is a no-op
	require.NoError(t, svc.EnsureBootstrapAdmin(ctx, authCfg))
	assert.Len(t, users.ListUsers(), 1)

	admin, _, _, err := svc.Login(ctx, "admin@yatraflow.local", "admin123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
}
