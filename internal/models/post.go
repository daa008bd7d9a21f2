package models

import "time"

// Post is a public status update. Posts are immutable once created.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`

	Author User `json:"author" gorm:"foreignKey:AuthorID"`
}

type CreatePostRequest struct {
	Body string `form:"mensaje" json:"mensaje" validate:"max=2000"`
}
