package services

import (
	"context"
	"strings"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
)

type GuestbookService struct {
	users       repositories.UserRepository
	friendships repositories.FriendshipRepository
	settings    repositories.SettingsRepository
	entries     repositories.GuestbookRepository
}

func NewGuestbookService(
	users repositories.UserRepository,
	friendships repositories.FriendshipRepository,
	settings repositories.SettingsRepository,
	entries repositories.GuestbookRepository,
) *GuestbookService {
	return &GuestbookService{users: users, friendships: friendships, settings: settings, entries: entries}
}

// Sign leaves a message on ownerID's guestbook. The owner's privacy level
// applies to signing the same way it applies to reading.
func (s *GuestbookService) Sign(ctx context.Context, authorID, ownerID uint, message string) (*models.GuestbookEntry, error) {
	if authorID == ownerID {
		return nil, ErrSelfGuestbook
	}
	if _, err := s.users.GetUserByID(ctx, ownerID); err != nil {
		return nil, storeErr("load owner", err)
	}

	prefs, err := s.settings.GetOrCreate(ctx, ownerID)
	if err != nil {
		return nil, storeErr("load owner settings", err)
	}
	if !prefs.GuestbookOpen {
		return nil, ErrGuestbookClosed
	}
	friends, err := s.friendships.AreFriends(ctx, authorID, ownerID)
	if err != nil {
		return nil, storeErr("check friendship", err)
	}
	if !prefs.AllowsContent(false, friends) {
		return nil, ErrPermissionDenied
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, nil
	}
	entry := &models.GuestbookEntry{AuthorID: authorID, OwnerID: ownerID, Message: message}
	if err := s.entries.CreateEntry(ctx, entry); err != nil {
		return nil, storeErr("create guestbook entry", err)
	}
	return entry, nil
}

func (s *GuestbookService) Entries(ctx context.Context, ownerID uint) ([]models.GuestbookEntry, error) {
	list, err := s.entries.GetEntriesForOwner(ctx, ownerID)
	return list, storeErr("load guestbook", err)
}
