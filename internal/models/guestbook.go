package models

import "time"

type GuestbookEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	OwnerID   uint      `json:"owner_id" gorm:"index;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`

	Author User `json:"author" gorm:"foreignKey:AuthorID"`
}

type SignGuestbookRequest struct {
	Message string `form:"mensaje" json:"mensaje" validate:"max=1000"`
}
