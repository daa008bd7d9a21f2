package repositories

import (
	"context"

	"github.com/anonto42/red-social/backend/internal/models"
	"gorm.io/gorm"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg *models.PrivateMessage) error
	GetByID(ctx context.Context, id uint) (*models.PrivateMessage, error)
	GetInbox(ctx context.Context, receiverID uint) ([]models.PrivateMessage, error)
	GetOutbox(ctx context.Context, senderID uint) ([]models.PrivateMessage, error)
	GetUnreadCount(ctx context.Context, receiverID uint) (int64, error)
	MarkAsRead(ctx context.Context, id uint) error
}

type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) CreateMessage(ctx context.Context, msg *models.PrivateMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *GormMessageRepository) GetByID(ctx context.Context, id uint) (*models.PrivateMessage, error) {
	var msg models.PrivateMessage
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *GormMessageRepository) GetInbox(ctx context.Context, receiverID uint) ([]models.PrivateMessage, error) {
	var msgs []models.PrivateMessage
	err := r.db.WithContext(ctx).Preload("Sender").
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").Order("id DESC").
		Find(&msgs).Error
	return msgs, err
}

func (r *GormMessageRepository) GetOutbox(ctx context.Context, senderID uint) ([]models.PrivateMessage, error) {
	var msgs []models.PrivateMessage
	err := r.db.WithContext(ctx).Preload("Receiver").
		Where("sender_id = ?", senderID).
		Order("created_at DESC").Order("id DESC").
		Find(&msgs).Error
	return msgs, err
}

func (r *GormMessageRepository) GetUnreadCount(ctx context.Context, receiverID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PrivateMessage{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).Count(&count).Error
	return count, err
}

func (r *GormMessageRepository) MarkAsRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.PrivateMessage{}).Where("id = ?", id).Update("is_read", true).Error
}
