package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcrypt ignores everything past 72 bytes and refuses longer input.
const maxPasswordBytes = 72

// AuthService registers users and manages their sessions. A session token is
// a signed JWT naming a server-side session record; deleting the record
// revokes the token even before it expires.
type AuthService struct {
	users    repositories.UserRepository
	sessions repositories.SessionRepository
	secret   []byte
	ttl      time.Duration
	cost     int
	now      func() time.Time
}

func NewAuthService(users repositories.UserRepository, sessions repositories.SessionRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		secret:   []byte(secret),
		ttl:      ttl,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
}

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (s *AuthService) WithHashCost(cost int) *AuthService {
	s.cost = cost
	return s
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if len(password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	_, err := s.users.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr("lookup username", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := &models.User{
		Username:       username,
		PasswordHash:   string(hash),
		Active:         true,
		LastActivityAt: now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, storeErr("create user", err)
	}
	return user, nil
}

// Login checks the credentials and opens a new session. It returns the signed
// session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, storeErr("lookup user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := s.now()
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}
	if err := s.users.SetActive(ctx, user.ID, true, now); err != nil {
		return "", nil, storeErr("mark active", err)
	}

	token, err := s.sign(session)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate resolves a session token to its live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	session, err := s.sessions.GetSession(ctx, claims.SessionID)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session.UserID != claims.UserID {
		return nil, ErrUnauthenticated
	}
	return session, nil
}

// Logout revokes the session behind token and marks its user inactive. An
// unparseable token is not an error; there is nothing to revoke.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.DeleteSession(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if err := s.users.SetActive(ctx, claims.UserID, false, s.now()); err != nil {
		return storeErr("mark inactive", err)
	}
	return nil
}

func (s *AuthService) sign(session *models.Session) (string, error) {
	claims := &models.SessionClaims{
		SessionID: session.ID,
		UserID:    session.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

func (s *AuthService) parse(token string) (*models.SessionClaims, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims := &models.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.SessionID == "" {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
