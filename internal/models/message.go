package models

import "time"

// PrivateMessage is a direct message between two confirmed friends.
type PrivateMessage struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"sender_id" gorm:"index;not null"`
	ReceiverID uint      `json:"receiver_id" gorm:"index;not null"`
	Body       string    `json:"body" gorm:"type:text;not null"`
	IsRead     bool      `json:"is_read" gorm:"not null;default:false;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`

	Sender   User `json:"sender" gorm:"foreignKey:SenderID"`
	Receiver User `json:"receiver" gorm:"foreignKey:ReceiverID"`
}

type SendMessageRequest struct {
	Body string `form:"contenido" json:"contenido" validate:"max=5000"`
}
