package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/anonto42/red-social/backend/internal/events"
	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
)

// Decision is the recipient's answer to a notification.
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionReject  Decision = "reject"
	DecisionDismiss Decision = "dismiss"
)

// ParseDecision accepts both the route words (aceptar, rechazar, descartar)
// and the English names.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aceptar", "accept":
		return DecisionAccept, nil
	case "rechazar", "reject":
		return DecisionReject, nil
	case "descartar", "dismiss":
		return DecisionDismiss, nil
	}
	return "", ErrInvalidDecision
}

type RelationshipService struct {
	users         repositories.UserRepository
	friendships   repositories.FriendshipRepository
	follows       repositories.FollowRepository
	notifications repositories.NotificationRepository
	settings      repositories.SettingsRepository
	publisher     events.Publisher
	now           func() time.Time
}

func NewRelationshipService(
	users repositories.UserRepository,
	friendships repositories.FriendshipRepository,
	follows repositories.FollowRepository,
	notifications repositories.NotificationRepository,
	settings repositories.SettingsRepository,
	publisher events.Publisher,
) *RelationshipService {
	if publisher == nil {
		publisher = events.LogPublisher{}
	}
	return &RelationshipService{
		users:         users,
		friendships:   friendships,
		follows:       follows,
		notifications: notifications,
		settings:      settings,
		publisher:     publisher,
		now:           time.Now,
	}
}

// RequestFriendship leaves a pending friend request in the target's
// notifications.
func (s *RelationshipService) RequestFriendship(ctx context.Context, requesterID, targetID uint) (*models.Notification, error) {
	if requesterID == targetID {
		return nil, ErrSelfRelation
	}
	if _, err := s.users.GetUserByID(ctx, targetID); err != nil {
		return nil, storeErr("load target", err)
	}

	friends, err := s.friendships.AreFriends(ctx, requesterID, targetID)
	if err != nil {
		return nil, storeErr("check friendship", err)
	}
	if friends {
		return nil, ErrAlreadyFriends
	}

	pending, err := s.notifications.HasPendingBetween(ctx, models.KindFriendRequest, requesterID, targetID)
	if err != nil {
		return nil, storeErr("check pending requests", err)
	}
	if pending {
		return nil, ErrRequestPending
	}

	notification := &models.Notification{
		Kind:        models.KindFriendRequest,
		SenderID:    requesterID,
		RecipientID: targetID,
		Status:      models.StatusPending,
	}
	if err := s.notifications.CreateNotification(ctx, notification); err != nil {
		return nil, storeErr("create friend request", err)
	}

	s.publish(ctx, events.FriendRequested, requesterID, targetID, notification.ID)
	return notification, nil
}

// RespondToRequest applies the recipient's decision to a pending notification.
// Only friend requests can be accepted or rejected; any kind can be dismissed.
func (s *RelationshipService) RespondToRequest(ctx context.Context, notificationID, actingUserID uint, decision Decision) (*models.Notification, error) {
	notification, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return nil, storeErr("load notification", err)
	}
	if notification.RecipientID != actingUserID {
		return nil, ErrPermissionDenied
	}
	if !notification.IsPending() {
		return nil, ErrAlreadyResolved
	}

	switch decision {
	case DecisionAccept:
		if notification.Kind != models.KindFriendRequest {
			return nil, ErrNotActionable
		}
		err = s.friendships.AcceptFriendRequest(ctx, notification.ID, notification.SenderID, notification.RecipientID)
		if err == nil {
			notification.Status = models.StatusAccepted
			s.publish(ctx, events.FriendAccepted, actingUserID, notification.SenderID, notification.ID)
		}
	case DecisionReject:
		if notification.Kind != models.KindFriendRequest {
			return nil, ErrNotActionable
		}
		err = s.notifications.Transition(ctx, notification.ID, models.StatusRejected)
		if err == nil {
			notification.Status = models.StatusRejected
			s.publish(ctx, events.FriendRejected, actingUserID, notification.SenderID, notification.ID)
		}
	case DecisionDismiss:
		err = s.notifications.Transition(ctx, notification.ID, models.StatusDismissed)
		if err == nil {
			notification.Status = models.StatusDismissed
		}
	default:
		return nil, ErrInvalidDecision
	}

	if errors.Is(err, repositories.ErrNotPending) {
		return nil, ErrAlreadyResolved
	}
	if err != nil {
		return nil, storeErr("resolve notification", err)
	}
	return notification, nil
}

// RemoveFriendship deletes both edges. Removing a friendship that does not
// exist is not an error.
func (s *RelationshipService) RemoveFriendship(ctx context.Context, userID, friendID uint) error {
	if userID == friendID {
		return ErrSelfRelation
	}
	removed, err := s.friendships.RemoveFriendship(ctx, userID, friendID)
	if err != nil {
		return storeErr("remove friendship", err)
	}
	if removed {
		s.publish(ctx, events.FriendRemoved, userID, friendID, 0)
	}
	return nil
}

// Follow creates the follow edge and, when the edge is new and the target
// accepts friend notifications, a new_follower notification.
func (s *RelationshipService) Follow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return ErrSelfRelation
	}
	if _, err := s.users.GetUserByID(ctx, targetID); err != nil {
		return storeErr("load target", err)
	}

	created, err := s.follows.CreateFollow(ctx, followerID, targetID)
	if err != nil {
		return storeErr("create follow", err)
	}
	if !created {
		return nil
	}

	var notificationID uint
	prefs, err := s.settings.GetOrCreate(ctx, targetID)
	if err != nil {
		return storeErr("load target settings", err)
	}
	if prefs.FriendNotifications {
		notification := &models.Notification{
			Kind:        models.KindNewFollower,
			SenderID:    followerID,
			RecipientID: targetID,
			Status:      models.StatusPending,
		}
		if err := s.notifications.CreateNotification(ctx, notification); err != nil {
			return storeErr("create follower notification", err)
		}
		notificationID = notification.ID
	}

	s.publish(ctx, events.Followed, followerID, targetID, notificationID)
	return nil
}

func (s *RelationshipService) Unfollow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return ErrSelfRelation
	}
	removed, err := s.follows.DeleteFollow(ctx, followerID, targetID)
	if err != nil {
		return storeErr("delete follow", err)
	}
	if removed {
		s.publish(ctx, events.Unfollowed, followerID, targetID, 0)
	}
	return nil
}

func (s *RelationshipService) AreFriends(ctx context.Context, userID, otherID uint) (bool, error) {
	ok, err := s.friendships.AreFriends(ctx, userID, otherID)
	return ok, storeErr("check friendship", err)
}

func (s *RelationshipService) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	ok, err := s.follows.IsFollowing(ctx, followerID, targetID)
	return ok, storeErr("check follow", err)
}

func (s *RelationshipService) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	friends, err := s.friendships.GetUserFriends(ctx, userID)
	return friends, storeErr("list friends", err)
}

func (s *RelationshipService) ListFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	users, err := s.follows.GetFollowers(ctx, userID)
	return users, storeErr("list followers", err)
}

func (s *RelationshipService) ListFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	users, err := s.follows.GetFollowing(ctx, userID)
	return users, storeErr("list following", err)
}

// FollowCounts returns the number of followers and followed users.
func (s *RelationshipService) FollowCounts(ctx context.Context, userID uint) (followers, following int64, err error) {
	if followers, err = s.follows.GetFollowersCount(ctx, userID); err != nil {
		return 0, 0, storeErr("count followers", err)
	}
	if following, err = s.follows.GetFollowingCount(ctx, userID); err != nil {
		return 0, 0, storeErr("count following", err)
	}
	return followers, following, nil
}

// PendingRequestBetween reports whether a friend request is waiting in either
// direction.
func (s *RelationshipService) PendingRequestBetween(ctx context.Context, userID, otherID uint) (bool, error) {
	ok, err := s.notifications.HasPendingBetween(ctx, models.KindFriendRequest, userID, otherID)
	return ok, storeErr("check pending requests", err)
}

func (s *RelationshipService) PendingNotifications(ctx context.Context, userID uint) ([]models.Notification, error) {
	list, err := s.notifications.GetPending(ctx, userID)
	return list, storeErr("list notifications", err)
}

func (s *RelationshipService) PendingCount(ctx context.Context, userID uint) (int64, error) {
	n, err := s.notifications.GetPendingCount(ctx, userID)
	return n, storeErr("count notifications", err)
}

func (s *RelationshipService) publish(ctx context.Context, t events.Type, actorID, targetID, notificationID uint) {
	e := events.Event{
		Type:           t,
		ActorID:        actorID,
		TargetID:       targetID,
		NotificationID: notificationID,
		At:             s.now(),
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		log.Printf("Failed to publish %s event: %v", t, err)
	}
}
