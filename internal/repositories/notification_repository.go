package repositories

import (
	"context"

	"github.com/anonto42/red-social/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	GetPending(ctx context.Context, recipientID uint) ([]models.Notification, error)
	GetPendingCount(ctx context.Context, recipientID uint) (int64, error)
	HasPendingBetween(ctx context.Context, kind models.NotificationKind, userA, userB uint) (bool, error)
	Transition(ctx context.Context, id uint, to models.NotificationStatus) error
}

type gormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	if notification.Status == "" {
		notification.Status = models.StatusPending
	}
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *gormNotificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.WithContext(ctx).Preload("Sender").First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// GetPending lists pending notifications, newest first.
func (r *gormNotificationRepository) GetPending(ctx context.Context, recipientID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).Preload("Sender").
		Where("recipient_id = ? AND status = ?", recipientID, models.StatusPending).
		Order("created_at DESC").Order("id DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *gormNotificationRepository) GetPendingCount(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("recipient_id = ? AND status = ?", recipientID, models.StatusPending).
		Count(&count).Error
	return count, err
}

// HasPendingBetween checks both directions of the pair.
func (r *gormNotificationRepository) HasPendingBetween(ctx context.Context, kind models.NotificationKind, userA, userB uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("kind = ? AND status = ?", kind, models.StatusPending).
		Where("((sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?))", userA, userB, userB, userA).
		Count(&count).Error
	return count > 0, err
}

// Transition moves a pending notification to a terminal status. It returns
// ErrNotPending if the notification was resolved in the meantime.
func (r *gormNotificationRepository) Transition(ctx context.Context, id uint, to models.NotificationStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotPending
	}
	return nil
}
