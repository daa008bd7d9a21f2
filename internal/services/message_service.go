package services

import (
	"context"
	"strings"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
)

type MessageService struct {
	users       repositories.UserRepository
	friendships repositories.FriendshipRepository
	settings    repositories.SettingsRepository
	messages    repositories.MessageRepository
}

func NewMessageService(users repositories.UserRepository, friendships repositories.FriendshipRepository, settings repositories.SettingsRepository, messages repositories.MessageRepository) *MessageService {
	return &MessageService{users: users, friendships: friendships, settings: settings, messages: messages}
}

// Send delivers a private message. Sender and receiver must be friends at send
// time. A blank body is dropped and (nil, nil) is returned.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID uint, body string) (*models.PrivateMessage, error) {
	if _, err := s.users.GetUserByID(ctx, receiverID); err != nil {
		return nil, storeErr("load receiver", err)
	}
	friends, err := s.friendships.AreFriends(ctx, senderID, receiverID)
	if err != nil {
		return nil, storeErr("check friendship", err)
	}
	if !friends {
		return nil, ErrNotFriends
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}
	msg := &models.PrivateMessage{SenderID: senderID, ReceiverID: receiverID, Body: body}
	if err := s.messages.CreateMessage(ctx, msg); err != nil {
		return nil, storeErr("create message", err)
	}
	return msg, nil
}

// MarkRead flags a message as read. Only its receiver may do so.
func (s *MessageService) MarkRead(ctx context.Context, messageID, userID uint) error {
	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return storeErr("load message", err)
	}
	if msg.ReceiverID != userID {
		return ErrPermissionDenied
	}
	if msg.IsRead {
		return nil
	}
	return storeErr("mark read", s.messages.MarkAsRead(ctx, messageID))
}

func (s *MessageService) Inbox(ctx context.Context, userID uint) ([]models.PrivateMessage, error) {
	list, err := s.messages.GetInbox(ctx, userID)
	return list, storeErr("load inbox", err)
}

func (s *MessageService) Outbox(ctx context.Context, userID uint) ([]models.PrivateMessage, error) {
	list, err := s.messages.GetOutbox(ctx, userID)
	return list, storeErr("load outbox", err)
}

func (s *MessageService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	n, err := s.messages.GetUnreadCount(ctx, userID)
	return n, storeErr("count unread", err)
}

// UnreadBadge is the unread count shown on the home page. It is zero when the
// user turned message notifications off.
func (s *MessageService) UnreadBadge(ctx context.Context, userID uint) (int64, error) {
	prefs, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, storeErr("load settings", err)
	}
	if !prefs.MessageNotifications {
		return 0, nil
	}
	return s.UnreadCount(ctx, userID)
}
