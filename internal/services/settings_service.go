package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
)

var networkBaseURLs = map[models.Network]string{
	models.NetworkFacebook:  "https://facebook.com/",
	models.NetworkTwitter:   "https://twitter.com/",
	models.NetworkInstagram: "https://instagram.com/",
	models.NetworkLinkedIn:  "https://linkedin.com/",
	models.NetworkGitHub:    "https://github.com/",
	models.NetworkYouTube:   "https://youtube.com/",
}

// ExternalProfileURL builds the address of username's profile on network.
func ExternalProfileURL(network, username string) (string, error) {
	base, ok := networkBaseURLs[models.Network(strings.ToLower(network))]
	if !ok {
		return "", ErrUnknownNetwork
	}
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return "", ErrNotFound
	}
	return base + url.PathEscape(username), nil
}

type SettingsService struct {
	settings repositories.SettingsRepository
}

func NewSettingsService(settings repositories.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns userID's settings, creating the defaults on first access.
func (s *SettingsService) Get(ctx context.Context, userID uint) (*models.Settings, error) {
	prefs, err := s.settings.GetOrCreate(ctx, userID)
	return prefs, storeErr("load settings", err)
}

// Update merges the non-nil fields of req into the stored settings.
func (s *SettingsService) Update(ctx context.Context, userID uint, req models.UpdateSettingsRequest) (*models.Settings, error) {
	for n := range req.Handles {
		if !n.Valid() {
			return nil, ErrUnknownNetwork
		}
	}

	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Privacy != nil {
		prefs.Privacy = *req.Privacy
	}
	if req.ShowMood != nil {
		prefs.ShowMood = *req.ShowMood
	}
	if req.EmailNotifications != nil {
		prefs.EmailNotifications = *req.EmailNotifications
	}
	if req.MessageNotifications != nil {
		prefs.MessageNotifications = *req.MessageNotifications
	}
	if req.FriendNotifications != nil {
		prefs.FriendNotifications = *req.FriendNotifications
	}
	if req.GuestbookOpen != nil {
		prefs.GuestbookOpen = *req.GuestbookOpen
	}
	if req.Theme != nil {
		prefs.Theme = *req.Theme
	}
	for n, handle := range req.Handles {
		prefs.SetHandle(n, strings.TrimPrefix(strings.TrimSpace(handle), "@"))
	}

	if err := s.settings.Save(ctx, prefs); err != nil {
		return nil, storeErr("save settings", err)
	}
	return prefs, nil
}
