package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never the raw password
	ProfileHTML    string    `json:"profile_html" gorm:"type:text"`
	Mood           string    `json:"mood" gorm:"size:120"`
	VisitCount     int64     `json:"visit_count" gorm:"not null;default:0"`
	Active         bool      `json:"active" gorm:"not null"`
	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"` // registration timestamp
	UpdatedAt      time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Username string `form:"username" json:"username" validate:"required,min=3,max=80,alphanum"`
	Password string `form:"password" json:"password" validate:"required,min=6,max=72"`
}

type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type UpdateMoodRequest struct {
	Mood string `form:"estado_animo" json:"estado_animo" validate:"max=120"`
}

type UpdateProfileRequest struct {
	ProfileHTML string `form:"perfil_html" json:"perfil_html" validate:"max=20000"`
}

// SessionClaims are the claims carried by the signed session cookie.
type SessionClaims struct {
	SessionID string `json:"sid"`
	UserID    uint   `json:"user_id"`
	jwt.RegisteredClaims
}
