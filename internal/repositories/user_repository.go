package repositories

import (
	"context"
	"time"

	"github.com/anonto42/red-social/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []uint) ([]models.User, error)
	ListByRegistration(ctx context.Context) ([]models.User, error)
	UpdateProfileHTML(ctx context.Context, id uint, html string) error
	UpdateMood(ctx context.Context, id uint, mood string) error
	SetActive(ctx context.Context, id uint, active bool, at time.Time) error
	IncrementVisitCount(ctx context.Context, id uint) error
}

// GormUserRepository implements UserRepository on any GORM dialect
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetUsersByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// ListByRegistration returns every user, newest registration first
func (r *GormUserRepository) ListByRegistration(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&users).Error
	return users, err
}

func (r *GormUserRepository) UpdateProfileHTML(ctx context.Context, id uint, html string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("profile_html", html).Error
}

func (r *GormUserRepository) UpdateMood(ctx context.Context, id uint, mood string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("mood", mood).Error
}

// SetActive flips the active flag. last_activity_at is only moved forward when
// the user becomes active.
func (r *GormUserRepository) SetActive(ctx context.Context, id uint, active bool, at time.Time) error {
	updates := map[string]any{"active": active}
	if active {
		updates["last_activity_at"] = at
	}
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GormUserRepository) IncrementVisitCount(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		UpdateColumn("visit_count", gorm.Expr("visit_count + ?", 1)).Error
}
