package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrUnauthenticated    = errors.New("not signed in")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordTooLong    = errors.New("password is longer than 72 bytes")

	ErrSelfRelation    = errors.New("cannot relate to yourself")
	ErrAlreadyFriends  = errors.New("users are already friends")
	ErrRequestPending  = errors.New("a friend request between these users is already pending")
	ErrAlreadyResolved = errors.New("notification was already resolved")
	ErrNotActionable   = errors.New("notification does not accept this decision")
	ErrInvalidDecision = errors.New("unknown decision")

	ErrNotFriends      = errors.New("messages can only be sent to friends")
	ErrSelfGuestbook   = errors.New("cannot sign your own guestbook")
	ErrGuestbookClosed = errors.New("guestbook is closed")
	ErrUnknownNetwork  = errors.New("unknown network")
)

// storeErr maps a missing record to ErrNotFound and wraps everything else.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
