package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
	"github.com/anonto42/red-social/backend/internal/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseSessions(t *testing.T, repo repositories.SessionRepository) {
	ctx := context.Background()

	s := &models.Session{ID: "3f1c1f9e-0d57-4f0e-9a4f-7d1a9a5c2b11", UserID: 42, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateSession(ctx, s))

	got, err := repo.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(42), got.UserID)
	assert.WithinDuration(t, s.ExpiresAt, got.ExpiresAt, 2*time.Second)

	require.NoError(t, repo.DeleteSession(ctx, s.ID))
	_, err = repo.GetSession(ctx, s.ID)
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)

	_, err = repo.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
}

func TestGormSessionRepository(t *testing.T) {
	exerciseSessions(t, repositories.NewGormSessionRepository(testutil.NewDB(t)))
}

func TestGormSessionRepositoryHidesExpired(t *testing.T) {
	repo := repositories.NewGormSessionRepository(testutil.NewDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, &models.Session{ID: "old", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)}))
	_, err := repo.GetSession(ctx, "old")
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
}

func TestRedisSessionRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	exerciseSessions(t, repositories.NewRedisSessionRepository(client))
}

func TestRedisSessionRepositoryExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	repo := repositories.NewRedisSessionRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.CreateSession(ctx, &models.Session{ID: "short", UserID: 7, ExpiresAt: time.Now().Add(time.Minute)}))
	assert.True(t, mr.Exists("session:short"))

	mr.FastForward(2 * time.Minute)

	_, err := repo.GetSession(ctx, "short")
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)

	err = repo.CreateSession(ctx, &models.Session{ID: "past", UserID: 7, ExpiresAt: time.Now().Add(-time.Second)})
	assert.Error(t, err)
}
