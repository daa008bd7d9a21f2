package services

import (
	"context"
	"testing"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCreatedWithDefaults(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	alice := e.register(t, "alice")

	prefs, err := e.settings.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PrivacyPublic, prefs.Privacy)
	assert.Equal(t, models.ThemeLight, prefs.Theme)
	assert.True(t, prefs.GuestbookOpen)
	assert.False(t, prefs.EmailNotifications)

	again, err := e.settings.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, prefs.ID, again.ID)
}

func TestSettingsMergeUpdate(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	alice := e.register(t, "alice")

	dark := models.ThemeDark
	yes := true
	_, err := e.settings.Update(ctx, alice.ID, models.UpdateSettingsRequest{
		Theme:              &dark,
		EmailNotifications: &yes,
		Handles:            map[models.Network]string{models.NetworkGitHub: "@alice"},
	})
	require.NoError(t, err)

	no := false
	prefs, err := e.settings.Update(ctx, alice.ID, models.UpdateSettingsRequest{ShowMood: &no})
	require.NoError(t, err)

	assert.False(t, prefs.ShowMood)
	assert.Equal(t, models.ThemeDark, prefs.Theme, "untouched fields keep their value")
	assert.True(t, prefs.EmailNotifications)
	assert.Equal(t, "alice", prefs.GitHub)
	assert.Equal(t, map[models.Network]string{models.NetworkGitHub: "alice"}, prefs.Links())

	stored, err := e.settings.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, stored.ShowMood)
	assert.Equal(t, models.ThemeDark, stored.Theme)

	_, err = e.settings.Update(ctx, alice.ID, models.UpdateSettingsRequest{
		Handles: map[models.Network]string{"myspace": "alice"},
	})
	assert.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestExternalProfileURL(t *testing.T) {
	got, err := ExternalProfileURL("github", "octocat")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/octocat", got)

	got, err = ExternalProfileURL("Twitter", "@jack")
	require.NoError(t, err)
	assert.Equal(t, "https://twitter.com/jack", got)

	got, err = ExternalProfileURL("facebook", "a b/c")
	require.NoError(t, err)
	assert.Equal(t, "https://facebook.com/a%20b%2Fc", got)

	_, err = ExternalProfileURL("myspace", "tom")
	assert.ErrorIs(t, err, ErrUnknownNetwork)
}
