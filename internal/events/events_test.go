package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventEncode(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	raw, err := Event{Type: FriendAccepted, ActorID: 2, TargetID: 1, NotificationID: 9, At: at}.Encode()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "friend_accepted", decoded["type"])
	assert.EqualValues(t, 2, decoded["actor_id"])
	assert.EqualValues(t, 9, decoded["notification_id"])

	raw, err = Event{Type: Followed, ActorID: 1, TargetID: 2, At: at}.Encode()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "notification_id")
}

func TestMultiPublishesToAll(t *testing.T) {
	var got []string
	boom := errors.New("boom")
	m := Multi{
		PublisherFunc(func(_ context.Context, e Event) error { got = append(got, "a:"+string(e.Type)); return nil }),
		PublisherFunc(func(context.Context, Event) error { return boom }),
		PublisherFunc(func(_ context.Context, e Event) error { got = append(got, "c:"+string(e.Type)); return nil }),
	}

	err := m.Publish(context.Background(), Event{Type: Unfollowed})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a:unfollowed", "c:unfollowed"}, got)

	assert.NoError(t, LogPublisher{}.Publish(context.Background(), Event{Type: Followed}))
}

func TestNewKafkaPublisherValidatesConfig(t *testing.T) {
	_, err := NewKafkaPublisher(KafkaConfig{Topic: "t"})
	assert.Error(t, err)
	_, err = NewKafkaPublisher(KafkaConfig{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)

	p, err := NewKafkaPublisher(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "social.relationships"})
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}
