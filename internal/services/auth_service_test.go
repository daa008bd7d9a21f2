package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestRegisterAndLogin(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()

	u, err := e.auth.Register(ctx, "  alice ", "password1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "password1", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password1")))

	_, err = e.auth.Register(ctx, "alice", "other-pass")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, _, err = e.auth.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = e.auth.Login(ctx, "nobody", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, user, err := e.auth.Login(ctx, "alice", "password1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, user.ID)

	session, err := e.auth.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, session.UserID)

	stored, err := e.users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, stored.Active)
}

func TestLogoutRevokesSession(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	u := e.register(t, "alice")

	token, _, err := e.auth.Login(ctx, "alice", "password1")
	require.NoError(t, err)

	require.NoError(t, e.auth.Logout(ctx, token))

	_, err = e.auth.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	stored, err := e.users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)

	assert.NoError(t, e.auth.Logout(ctx, "garbage"))
}

func TestAuthenticateRejectsForeignTokens(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	e.register(t, "alice")

	token, _, err := e.auth.Login(ctx, "alice", "password1")
	require.NoError(t, err)

	other := NewAuthService(e.users, repositories.NewGormSessionRepository(e.db), "another-secret", time.Hour)
	_, err = other.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = e.auth.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = e.auth.Authenticate(ctx, token+"x")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticateRejectsExpiredSession(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	e.register(t, "alice")

	e.auth.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := e.auth.Login(ctx, "alice", "password1")
	require.NoError(t, err)

	_, err = e.auth.Authenticate(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRegisterRejectsPasswordOverBcryptLimit(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()

	// 40 runes, 80 bytes.
	_, err := e.auth.Register(ctx, "carol", strings.Repeat("ñ", 40))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	u, err := e.auth.Register(ctx, "carol", strings.Repeat("ñ", 36))
	require.NoError(t, err)
	assert.Equal(t, "carol", u.Username)
}

// staleLookup answers every username lookup with not found, as a concurrent
// registration would see before the other insert commits.
type staleLookup struct {
	repositories.UserRepository
}

func (staleLookup) GetUserByUsername(context.Context, string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestRegisterMapsUniqueViolationToUsernameTaken(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	e.register(t, "alice")

	auth := NewAuthService(staleLookup{e.users}, repositories.NewGormSessionRepository(e.db), "test-secret", time.Hour).
		WithHashCost(bcrypt.MinCost)
	_, err := auth.Register(ctx, "alice", "password1")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
