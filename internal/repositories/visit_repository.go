package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/anonto42/red-social/backend/internal/models"
	"gorm.io/gorm"
)

type VisitRepository interface {
	// Touch records a visit at now and returns the previous visit time, or the
	// zero time if the visitor never viewed the profile before.
	Touch(ctx context.Context, visitorID, ownerID uint, now time.Time) (time.Time, error)
}

type GormVisitRepository struct {
	db *gorm.DB
}

func NewGormVisitRepository(db *gorm.DB) *GormVisitRepository {
	return &GormVisitRepository{db: db}
}

func (r *GormVisitRepository) Touch(ctx context.Context, visitorID, ownerID uint, now time.Time) (time.Time, error) {
	var previous time.Time
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var visit models.ProfileVisit
		err := tx.Where("visitor_id = ? AND owner_id = ?", visitorID, ownerID).First(&visit).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.ProfileVisit{VisitorID: visitorID, OwnerID: ownerID, LastVisitedAt: now}).Error
		}
		if err != nil {
			return err
		}
		previous = visit.LastVisitedAt
		return tx.Model(&visit).Update("last_visited_at", now).Error
	})
	return previous, err
}
