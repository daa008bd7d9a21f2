package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/red-social/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Settings, error)
	GetOrCreate(ctx context.Context, userID uint) (*models.Settings, error)
	Save(ctx context.Context, settings *models.Settings) error
}

type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) GetByUserID(ctx context.Context, userID uint) (*models.Settings, error) {
	var s models.Settings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetOrCreate returns the stored settings, inserting the defaults first if the
// user has none yet.
func (r *GormSettingsRepository) GetOrCreate(ctx context.Context, userID uint) (*models.Settings, error) {
	s, err := r.GetByUserID(ctx, userID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := models.DefaultSettings(userID)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(defaults).Error; err != nil {
		return nil, err
	}
	return r.GetByUserID(ctx, userID)
}

func (r *GormSettingsRepository) Save(ctx context.Context, settings *models.Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
