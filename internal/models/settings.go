package models

import "time"

type PrivacyLevel string

const (
	PrivacyPublic  PrivacyLevel = "public"
	PrivacyFriends PrivacyLevel = "friends"
	PrivacyPrivate PrivacyLevel = "private"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Network is one of the external sites a user can link from their profile.
type Network string

const (
	NetworkFacebook  Network = "facebook"
	NetworkTwitter   Network = "twitter"
	NetworkInstagram Network = "instagram"
	NetworkLinkedIn  Network = "linkedin"
	NetworkGitHub    Network = "github"
	NetworkYouTube   Network = "youtube"
)

// Networks lists the supported networks in display order.
var Networks = []Network{
	NetworkFacebook,
	NetworkTwitter,
	NetworkInstagram,
	NetworkLinkedIn,
	NetworkGitHub,
	NetworkYouTube,
}

func (n Network) Valid() bool {
	for _, known := range Networks {
		if n == known {
			return true
		}
	}
	return false
}

// Settings holds the per-user privacy and notification configuration.
// Each network handle is its own column; an empty string means unset.
type Settings struct {
	ID                   uint         `json:"id" gorm:"primaryKey"`
	UserID               uint         `json:"user_id" gorm:"uniqueIndex;not null"`
	Privacy              PrivacyLevel `json:"privacidad_perfil" gorm:"size:20;not null;default:'public'"`
	ShowMood             bool         `json:"mostrar_estado" gorm:"not null"`
	EmailNotifications   bool         `json:"notificaciones_email" gorm:"not null"`
	MessageNotifications bool         `json:"notificaciones_mensajes" gorm:"not null"`
	FriendNotifications  bool         `json:"notificaciones_amigos" gorm:"not null"`
	GuestbookOpen        bool         `json:"libro_visitas" gorm:"not null"`
	Theme                Theme        `json:"tema" gorm:"size:20;not null;default:'light'"`

	Facebook  string `json:"facebook,omitempty" gorm:"size:100"`
	Twitter   string `json:"twitter,omitempty" gorm:"size:100"`
	Instagram string `json:"instagram,omitempty" gorm:"size:100"`
	LinkedIn  string `json:"linkedin,omitempty" gorm:"size:100"`
	GitHub    string `json:"github,omitempty" gorm:"size:100"`
	YouTube   string `json:"youtube,omitempty" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSettings returns the configuration a user starts with.
func DefaultSettings(userID uint) *Settings {
	return &Settings{
		UserID:               userID,
		Privacy:              PrivacyPublic,
		ShowMood:             true,
		MessageNotifications: true,
		FriendNotifications:  true,
		GuestbookOpen:        true,
		Theme:                ThemeLight,
	}
}

func (s *Settings) Handle(n Network) string {
	if p := s.handleField(n); p != nil {
		return *p
	}
	return ""
}

func (s *Settings) SetHandle(n Network, handle string) {
	if p := s.handleField(n); p != nil {
		*p = handle
	}
}

// Links returns only the networks that have a handle set.
func (s *Settings) Links() map[Network]string {
	links := make(map[Network]string)
	for _, n := range Networks {
		if h := s.Handle(n); h != "" {
			links[n] = h
		}
	}
	return links
}

func (s *Settings) handleField(n Network) *string {
	switch n {
	case NetworkFacebook:
		return &s.Facebook
	case NetworkTwitter:
		return &s.Twitter
	case NetworkInstagram:
		return &s.Instagram
	case NetworkLinkedIn:
		return &s.LinkedIn
	case NetworkGitHub:
		return &s.GitHub
	case NetworkYouTube:
		return &s.YouTube
	}
	return nil
}

// UpdateSettingsRequest is a partial update: nil fields are left untouched.
type UpdateSettingsRequest struct {
	Privacy              *PrivacyLevel      `json:"privacidad_perfil" validate:"omitempty,oneof=public friends private"`
	ShowMood             *bool              `json:"mostrar_estado"`
	EmailNotifications   *bool              `json:"notificaciones_email"`
	MessageNotifications *bool              `json:"notificaciones_mensajes"`
	FriendNotifications  *bool              `json:"notificaciones_amigos"`
	GuestbookOpen        *bool              `json:"libro_visitas"`
	Theme                *Theme             `json:"tema" validate:"omitempty,oneof=light dark"`
	Handles              map[Network]string `json:"redes" validate:"omitempty,dive,keys,oneof=facebook twitter instagram linkedin github youtube,endkeys,max=100,excludesall=/?#"`
}

// AllowsContent reports whether posts and the guestbook are visible to a
// viewer under this privacy level.
func (s *Settings) AllowsContent(isOwner, isFriend bool) bool {
	if isOwner {
		return true
	}
	switch s.Privacy {
	case PrivacyPrivate:
		return false
	case PrivacyFriends:
		return isFriend
	}
	return true
}
