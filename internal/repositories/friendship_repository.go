package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/red-social/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotPending is returned when a notification was already resolved by the
// time a transition was attempted.
var ErrNotPending = errors.New("notification is not pending")

// FriendshipRepository defines the interface for friendship edge operations
type FriendshipRepository interface {
	AreFriends(ctx context.Context, userID, friendID uint) (bool, error)
	GetUserFriends(ctx context.Context, userID uint) ([]models.User, error)
	AcceptFriendRequest(ctx context.Context, notificationID, senderID, recipientID uint) error
	RemoveFriendship(ctx context.Context, userID, friendID uint) (bool, error)
}

// GormFriendshipRepository keeps both directions of every friendship in the
// friendships table.
type GormFriendshipRepository struct {
	db *gorm.DB
}

// NewGormFriendshipRepository creates a new GormFriendshipRepository
func NewGormFriendshipRepository(db *gorm.DB) *GormFriendshipRepository {
	return &GormFriendshipRepository{db: db}
}

func (r *GormFriendshipRepository) AreFriends(ctx context.Context, userID, friendID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).Count(&count).Error
	return count > 0, err
}

func (r *GormFriendshipRepository) GetUserFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var friends []models.User
	err := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&models.Friendship{}).Select("friend_id").Where("user_id = ?", userID)).
		Order("username ASC").
		Find(&friends).Error
	return friends, err
}

// AcceptFriendRequest marks the notification accepted and writes both
// friendship edges in a single transaction. The status update only matches a
// pending row, so of two concurrent accepts exactly one succeeds.
func (r *GormFriendshipRepository) AcceptFriendRequest(ctx context.Context, notificationID, senderID, recipientID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Notification{}).
			Where("id = ? AND status = ?", notificationID, models.StatusPending).
			Update("status", models.StatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPending
		}

		edges := []models.Friendship{
			{UserID: recipientID, FriendID: senderID},
			{UserID: senderID, FriendID: recipientID},
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "friend_id"}},
			DoNothing: true,
		}).Create(&edges).Error
	})
}

// RemoveFriendship deletes both directions. removed is false when the users
// were not friends.
func (r *GormFriendshipRepository) RemoveFriendship(ctx context.Context, userID, friendID uint) (bool, error) {
	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).Delete(&models.Friendship{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected > 0
		return nil
	})
	return removed, err
}
