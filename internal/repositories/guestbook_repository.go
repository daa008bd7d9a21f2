package repositories

import (
	"context"

	"github.com/anonto42/red-social/backend/internal/models"
	"gorm.io/gorm"
)

type GuestbookRepository interface {
	CreateEntry(ctx context.Context, entry *models.GuestbookEntry) error
	GetEntriesForOwner(ctx context.Context, ownerID uint) ([]models.GuestbookEntry, error)
}

type GormGuestbookRepository struct {
	db *gorm.DB
}

func NewGormGuestbookRepository(db *gorm.DB) *GormGuestbookRepository {
	return &GormGuestbookRepository{db: db}
}

func (r *GormGuestbookRepository) CreateEntry(ctx context.Context, entry *models.GuestbookEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetEntriesForOwner lists entries in insertion order.
func (r *GormGuestbookRepository) GetEntriesForOwner(ctx context.Context, ownerID uint) ([]models.GuestbookEntry, error) {
	var entries []models.GuestbookEntry
	err := r.db.WithContext(ctx).Preload("Author").
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}
