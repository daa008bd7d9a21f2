package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostsDropBlankAndCapFeed(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	alice := e.register(t, "alice")

	post, err := e.posts.Create(ctx, alice.ID, "   \n\t ")
	require.NoError(t, err)
	assert.Nil(t, post)

	for i := 1; i <= 12; i++ {
		_, err := e.posts.Create(ctx, alice.ID, "post "+strconv.Itoa(i))
		require.NoError(t, err)
	}

	feed, err := e.posts.Feed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 10)
	assert.Equal(t, "post 12", feed[0].Body, "newest first")
	assert.Equal(t, "alice", feed[0].Author.Username)

	all, err := e.posts.ByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, all, 12)
}

func TestMessagesRequireFriendship(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	alice := e.register(t, "alice")
	bob := e.register(t, "bob")

	_, err := e.messages.Send(ctx, bob.ID, alice.ID, "hola")
	assert.ErrorIs(t, err, ErrNotFriends)

	var count int64
	require.NoError(t, e.db.Model(&models.PrivateMessage{}).Count(&count).Error)
	assert.Zero(t, count, "nothing is stored for a rejected message")

	_, err = e.messages.Send(ctx, alice.ID, alice.ID, "me")
	assert.ErrorIs(t, err, ErrNotFriends)
	_, err = e.messages.Send(ctx, alice.ID, 999, "hola")
	assert.ErrorIs(t, err, ErrNotFound)

	e.befriend(t, alice, bob)

	msg, err := e.messages.Send(ctx, bob.ID, alice.ID, " hola alice ")
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "hola alice", msg.Body)

	blank, err := e.messages.Send(ctx, bob.ID, alice.ID, "  ")
	require.NoError(t, err)
	assert.Nil(t, blank)

	unread, err := e.messages.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	assert.ErrorIs(t, e.messages.MarkRead(ctx, msg.ID, bob.ID), ErrPermissionDenied)
	assert.ErrorIs(t, e.messages.MarkRead(ctx, 4040, alice.ID), ErrNotFound)
	require.NoError(t, e.messages.MarkRead(ctx, msg.ID, alice.ID))

	inbox, err := e.messages.Inbox(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.True(t, inbox[0].IsRead)
	assert.Equal(t, "bob", inbox[0].Sender.Username)

	outbox, err := e.messages.Outbox(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, outbox, 1)
	assert.Equal(t, "alice", outbox[0].Receiver.Username)

	// Friendship is checked at send time.
	require.NoError(t, e.relationships.RemoveFriendship(ctx, alice.ID, bob.ID))
	_, err = e.messages.Send(ctx, bob.ID, alice.ID, "sigues ahí?")
	assert.ErrorIs(t, err, ErrNotFriends)
}

func TestUnreadBadgeFollowsMessageNotifications(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	alice, bob := e.register(t, "alice"), e.register(t, "bob")
	e.befriend(t, alice, bob)

	_, err := e.messages.Send(ctx, bob.ID, alice.ID, "hola")
	require.NoError(t, err)

	badge, err := e.messages.UnreadBadge(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, badge)

	off := false
	_, err = e.settings.Update(ctx, alice.ID, models.UpdateSettingsRequest{MessageNotifications: &off})
	require.NoError(t, err)

	badge, err = e.messages.UnreadBadge(ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, badge)

	unread, err := e.messages.UnreadCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread, "the inbox still counts the message")
}

func TestGuestbookRules(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	alice := e.register(t, "alice")
	bob := e.register(t, "bob")
	carol := e.register(t, "carol")

	_, err := e.guestbook.Sign(ctx, alice.ID, alice.ID, "me")
	assert.ErrorIs(t, err, ErrSelfGuestbook)

	_, err = e.guestbook.Sign(ctx, bob.ID, alice.ID, "primero")
	require.NoError(t, err)
	_, err = e.guestbook.Sign(ctx, carol.ID, alice.ID, "segundo")
	require.NoError(t, err)
	blank, err := e.guestbook.Sign(ctx, carol.ID, alice.ID, "")
	require.NoError(t, err)
	assert.Nil(t, blank)

	entries, err := e.guestbook.Entries(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "primero", entries[0].Message, "insertion order")
	assert.Equal(t, "bob", entries[0].Author.Username)
	for _, entry := range entries {
		assert.NotEqual(t, alice.ID, entry.AuthorID)
	}

	closed := false
	_, err = e.settings.Update(ctx, alice.ID, models.UpdateSettingsRequest{GuestbookOpen: &closed})
	require.NoError(t, err)
	_, err = e.guestbook.Sign(ctx, bob.ID, alice.ID, "tercero")
	assert.ErrorIs(t, err, ErrGuestbookClosed)

	friendsOnly := models.PrivacyFriends
	open := true
	_, err = e.settings.Update(ctx, alice.ID, models.UpdateSettingsRequest{Privacy: &friendsOnly, GuestbookOpen: &open})
	require.NoError(t, err)
	_, err = e.guestbook.Sign(ctx, bob.ID, alice.ID, "cuarto")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	e.befriend(t, alice, bob)
	_, err = e.guestbook.Sign(ctx, bob.ID, alice.ID, "cuarto")
	assert.NoError(t, err)
}
