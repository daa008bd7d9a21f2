package services

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitCounter(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	alice := e.register(t, "alice")
	bob := e.register(t, "bob")

	for i := 0; i < 3; i++ {
		view, err := e.profiles.ViewProfile(ctx, bob.ID, "alice")
		require.NoError(t, err)
		assert.EqualValues(t, i+1, view.Owner.VisitCount)
		assert.False(t, view.IsOwn)
	}

	own, err := e.profiles.ViewProfile(ctx, alice.ID, "")
	require.NoError(t, err)
	assert.True(t, own.IsOwn)
	assert.EqualValues(t, 3, own.Owner.VisitCount)

	own, err = e.profiles.ViewProfile(ctx, alice.ID, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 3, own.Owner.VisitCount, "viewing your own profile never counts")

	_, err = e.profiles.ViewProfile(ctx, alice.ID, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVisitCounterDeduplicates(t *testing.T) {
	e := newEnv(t, time.Hour)
	ctx := context.Background()
	e.register(t, "alice")
	bob := e.register(t, "bob")

	now := time.Now()
	e.profiles.now = func() time.Time { return now }

	_, err := e.profiles.ViewProfile(ctx, bob.ID, "alice")
	require.NoError(t, err)
	view, err := e.profiles.ViewProfile(ctx, bob.ID, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, view.Owner.VisitCount)

	now = now.Add(2 * time.Hour)
	view, err = e.profiles.ViewProfile(ctx, bob.ID, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 2, view.Owner.VisitCount)
}

func TestPrivacyGatesContent(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	alice := e.register(t, "alice")
	bob := e.register(t, "bob")
	carol := e.register(t, "carol")
	e.befriend(t, alice, bob)

	_, err := e.posts.Create(ctx, alice.ID, "solo para amigos")
	require.NoError(t, err)

	cases := []struct {
		level  models.PrivacyLevel
		viewer *models.User
		sees   bool
	}{
		{models.PrivacyPublic, carol, true},
		{models.PrivacyFriends, carol, false},
		{models.PrivacyFriends, bob, true},
		{models.PrivacyPrivate, bob, false},
		{models.PrivacyPrivate, alice, true},
	}
	for _, tc := range cases {
		level := tc.level
		_, err := e.settings.Update(ctx, alice.ID, models.UpdateSettingsRequest{Privacy: &level})
		require.NoError(t, err)

		view, err := e.profiles.ViewProfile(ctx, tc.viewer.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, tc.sees, view.CanSeeContent, "%s viewing %s profile", tc.viewer.Username, level)
		if tc.sees {
			assert.Len(t, view.Posts, 1)
		} else {
			assert.Empty(t, view.Posts)
		}
		assert.Equal(t, "alice", view.Owner.Username, "the header is always visible")
	}
}

func TestProfileRelationshipFlags(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	alice := e.register(t, "alice")
	bob := e.register(t, "bob")

	_, err := e.relationships.RequestFriendship(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	require.NoError(t, e.relationships.Follow(ctx, bob.ID, alice.ID))

	view, err := e.profiles.ViewProfile(ctx, bob.ID, "alice")
	require.NoError(t, err)
	assert.False(t, view.AreFriends)
	assert.True(t, view.RequestPending)
	assert.True(t, view.IsFollowing)
	assert.EqualValues(t, 1, view.FollowersCount)
}

func TestProfileMarkupIsSanitized(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	alice := e.register(t, "alice")

	clean, err := e.profiles.UpdateProfileHTML(ctx, alice.ID, `<p onclick="x()">Hola <b>mundo</b></p><script>alert(1)</script>`)
	require.NoError(t, err)
	assert.NotContains(t, clean, "<script")
	assert.NotContains(t, clean, "onclick")
	assert.Contains(t, clean, "<b>mundo</b>")

	require.NoError(t, e.profiles.UpdateMood(ctx, alice.ID, "  feliz "))

	view, err := e.profiles.ViewProfile(ctx, alice.ID, "")
	require.NoError(t, err)
	assert.Equal(t, clean, view.Owner.ProfileHTML)
	assert.Equal(t, "feliz", view.Owner.Mood)
	assert.True(t, view.ShowMood())
}
