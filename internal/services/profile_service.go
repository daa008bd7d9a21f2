package services

import (
	"context"
	"strings"
	"time"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

// ProfileView is everything a profile page shows to one viewer.
type ProfileView struct {
	Owner          *models.User
	Settings       *models.Settings
	IsOwn          bool
	AreFriends     bool
	IsFollowing    bool
	RequestPending bool
	CanSeeContent  bool
	Posts          []models.Post
	Guestbook      []models.GuestbookEntry
	Friends        []models.User
	FollowersCount int64
	FollowingCount int64
	Links          map[models.Network]string
}

// ShowMood reports whether the mood line belongs in the header.
func (v *ProfileView) ShowMood() bool {
	return v.Owner.Mood != "" && (v.IsOwn || v.Settings.ShowMood)
}

type ProfileService struct {
	users         repositories.UserRepository
	visits        repositories.VisitRepository
	posts         *PostService
	guestbook     *GuestbookService
	relationships *RelationshipService
	settings      *SettingsService
	policy        *bluemonday.Policy
	dedupWindow   time.Duration
	now           func() time.Time
}

func NewProfileService(
	users repositories.UserRepository,
	visits repositories.VisitRepository,
	posts *PostService,
	guestbook *GuestbookService,
	relationships *RelationshipService,
	settings *SettingsService,
	dedupWindow time.Duration,
) *ProfileService {
	return &ProfileService{
		users:         users,
		visits:        visits,
		posts:         posts,
		guestbook:     guestbook,
		relationships: relationships,
		settings:      settings,
		policy:        bluemonday.UGCPolicy(),
		dedupWindow:   dedupWindow,
		now:           time.Now,
	}
}

func (s *ProfileService) User(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	return user, storeErr("load user", err)
}

// Directory lists every user, newest registrations first.
func (s *ProfileService) Directory(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListByRegistration(ctx)
	return users, storeErr("list users", err)
}

// ViewProfile loads username's profile as seen by viewerID. An empty username
// means the viewer's own profile. Views by anyone but the owner are counted.
func (s *ProfileService) ViewProfile(ctx context.Context, viewerID uint, username string) (*ProfileView, error) {
	var (
		owner *models.User
		err   error
	)
	if username = strings.TrimSpace(username); username == "" {
		owner, err = s.users.GetUserByID(ctx, viewerID)
	} else {
		owner, err = s.users.GetUserByUsername(ctx, username)
	}
	if err != nil {
		return nil, storeErr("load profile", err)
	}

	view := &ProfileView{Owner: owner, IsOwn: owner.ID == viewerID}

	if view.Settings, err = s.settings.Get(ctx, owner.ID); err != nil {
		return nil, err
	}
	view.Links = view.Settings.Links()

	if !view.IsOwn {
		if view.AreFriends, err = s.relationships.AreFriends(ctx, viewerID, owner.ID); err != nil {
			return nil, err
		}
		if view.IsFollowing, err = s.relationships.IsFollowing(ctx, viewerID, owner.ID); err != nil {
			return nil, err
		}
		if !view.AreFriends {
			if view.RequestPending, err = s.relationships.PendingRequestBetween(ctx, viewerID, owner.ID); err != nil {
				return nil, err
			}
		}
		counted, err := s.countVisit(ctx, viewerID, owner.ID)
		if err != nil {
			return nil, err
		}
		if counted {
			owner.VisitCount++
		}
	}

	if view.FollowersCount, view.FollowingCount, err = s.relationships.FollowCounts(ctx, owner.ID); err != nil {
		return nil, err
	}
	if view.Friends, err = s.relationships.ListFriends(ctx, owner.ID); err != nil {
		return nil, err
	}

	view.CanSeeContent = view.Settings.AllowsContent(view.IsOwn, view.AreFriends)
	if !view.CanSeeContent {
		return view, nil
	}
	if view.Posts, err = s.posts.ByAuthor(ctx, owner.ID); err != nil {
		return nil, err
	}
	if view.Guestbook, err = s.guestbook.Entries(ctx, owner.ID); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *ProfileService) countVisit(ctx context.Context, visitorID, ownerID uint) (bool, error) {
	if s.dedupWindow > 0 {
		now := s.now()
		previous, err := s.visits.Touch(ctx, visitorID, ownerID, now)
		if err != nil {
			return false, storeErr("record visit", err)
		}
		if !previous.IsZero() && now.Sub(previous) < s.dedupWindow {
			return false, nil
		}
	}
	if err := s.users.IncrementVisitCount(ctx, ownerID); err != nil {
		return false, storeErr("count visit", err)
	}
	return true, nil
}

// UpdateProfileHTML stores the user's profile markup after sanitizing it.
func (s *ProfileService) UpdateProfileHTML(ctx context.Context, userID uint, markup string) (string, error) {
	clean := strings.TrimSpace(s.policy.Sanitize(markup))
	if err := s.users.UpdateProfileHTML(ctx, userID, clean); err != nil {
		return "", storeErr("update profile", err)
	}
	return clean, nil
}

func (s *ProfileService) UpdateMood(ctx context.Context, userID uint, mood string) error {
	return storeErr("update mood", s.users.UpdateMood(ctx, userID, strings.TrimSpace(mood)))
}
