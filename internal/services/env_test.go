package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/anonto42/red-social/backend/internal/events"
	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
	"github.com/anonto42/red-social/backend/internal/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Type, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

type env struct {
	db            *gorm.DB
	events        *recorder
	users         repositories.UserRepository
	auth          *AuthService
	relationships *RelationshipService
	posts         *PostService
	messages      *MessageService
	guestbook     *GuestbookService
	settings      *SettingsService
	profiles      *ProfileService
}

func newEnv(t *testing.T, dedup time.Duration) *env {
	t.Helper()
	db := testutil.NewDB(t)
	rec := &recorder{}

	users := repositories.NewGormUserRepository(db)
	friendships := repositories.NewGormFriendshipRepository(db)
	settingsRepo := repositories.NewGormSettingsRepository(db)

	e := &env{db: db, events: rec, users: users}
	e.auth = NewAuthService(users, repositories.NewGormSessionRepository(db), "test-secret", time.Hour).WithHashCost(bcrypt.MinCost)
	e.relationships = NewRelationshipService(users, friendships, repositories.NewGormFollowRepository(db),
		repositories.NewGormNotificationRepository(db), settingsRepo, rec)
	e.posts = NewPostService(repositories.NewGormPostRepository(db), 10)
	e.messages = NewMessageService(users, friendships, settingsRepo, repositories.NewGormMessageRepository(db))
	e.guestbook = NewGuestbookService(users, friendships, settingsRepo, repositories.NewGormGuestbookRepository(db))
	e.settings = NewSettingsService(settingsRepo)
	e.profiles = NewProfileService(users, repositories.NewGormVisitRepository(db), e.posts, e.guestbook, e.relationships, e.settings, dedup)
	return e
}

func (e *env) register(t *testing.T, name string) *models.User {
	t.Helper()
	u, err := e.auth.Register(context.Background(), name, "password1")
	require.NoError(t, err)
	return u
}

// befriend runs the full request and accept flow.
func (e *env) befriend(t *testing.T, a, b *models.User) {
	t.Helper()
	ctx := context.Background()
	n, err := e.relationships.RequestFriendship(ctx, a.ID, b.ID)
	require.NoError(t, err)
	_, err = e.relationships.RespondToRequest(ctx, n.ID, b.ID, DecisionAccept)
	require.NoError(t, err)
}

func usernames(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Username
	}
	return out
}
