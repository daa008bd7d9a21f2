package models

import "time"

type Session struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// ProfileVisit remembers the last time a visitor viewed a profile. It is only
// consulted when visit de-duplication is enabled.
type ProfileVisit struct {
	ID            uint      `gorm:"primaryKey"`
	VisitorID     uint      `gorm:"uniqueIndex:idx_visitor_owner;not null"`
	OwnerID       uint      `gorm:"uniqueIndex:idx_visitor_owner;not null"`
	LastVisitedAt time.Time `gorm:"not null"`
}
