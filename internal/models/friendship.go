package models

import "time"

// Friendship is one direction of a confirmed friendship. Every friendship is
// stored as two rows, (a, b) and (b, a).
type Friendship struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_friend"`
	FriendID  uint      `json:"friend_id" gorm:"index;uniqueIndex:idx_user_friend"`
	CreatedAt time.Time `json:"created_at"`
}
