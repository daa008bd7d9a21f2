package models

import "time"

type NotificationKind string

const (
	KindFriendRequest NotificationKind = "friend_request"
	KindNewFollower   NotificationKind = "new_follower"
)

type NotificationStatus string

const (
	StatusPending   NotificationStatus = "pending"
	StatusAccepted  NotificationStatus = "accepted"
	StatusRejected  NotificationStatus = "rejected"
	StatusDismissed NotificationStatus = "dismissed"
)

// Notification is an append-only record; only Status changes after creation.
type Notification struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	Kind        NotificationKind   `json:"kind" gorm:"size:30;index;not null"`
	SenderID    uint               `json:"sender_id" gorm:"index;not null"`
	RecipientID uint               `json:"recipient_id" gorm:"index;not null"`
	Status      NotificationStatus `json:"status" gorm:"size:20;index;not null;default:'pending'"`
	CreatedAt   time.Time          `json:"created_at" gorm:"index"`

	Sender User `json:"sender" gorm:"foreignKey:SenderID"`
}

func (n *Notification) IsPending() bool {
	return n.Status == StatusPending
}
