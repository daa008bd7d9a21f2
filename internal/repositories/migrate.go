package repositories

import (
	"github.com/anonto42/red-social/backend/internal/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every relational table the application uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.Follow{},
		&models.Notification{},
		&models.Post{},
		&models.PrivateMessage{},
		&models.GuestbookEntry{},
		&models.Settings{},
		&models.Session{},
		&models.ProfileVisit{},
	)
}
