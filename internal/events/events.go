// Package events publishes relationship changes so other systems can react to
// them without polling the store.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

type Type string

const (
	FriendRequested Type = "friend_requested"
	FriendAccepted  Type = "friend_accepted"
	FriendRejected  Type = "friend_rejected"
	FriendRemoved   Type = "friend_removed"
	Followed        Type = "followed"
	Unfollowed      Type = "unfollowed"
)

type Event struct {
	Type           Type      `json:"type"`
	ActorID        uint      `json:"actor_id"`
	TargetID       uint      `json:"target_id"`
	NotificationID uint      `json:"notification_id,omitempty"`
	At             time.Time `json:"at"`
}

func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// LogPublisher writes events to the standard logger. It is used when no broker
// is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, e Event) error {
	log.Printf("event type=%s actor=%d target=%d notification=%d", e.Type, e.ActorID, e.TargetID, e.NotificationID)
	return nil
}

// Multi fans an event out to several publishers and returns the first error.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var first error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, e Event) error

func (f PublisherFunc) Publish(ctx context.Context, e Event) error {
	return f(ctx, e)
}
