package middleware

import (
	"context"
	"net/http"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookie carries the signed session token.
	SessionCookie = "session"

	userIDKey = "userID"
)

// Authenticator resolves a session token to a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

// LoadSession puts the signed-in user id into the context when the request
// carries a valid session cookie. It never rejects a request; a stale cookie
// is cleared.
func LoadSession(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			session, err := auth.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				ClearSessionCookie(c)
				return next(c)
			}

			c.Set(userIDKey, session.UserID)
			return next(c)
		}
	}
}

// RequireSession redirects anonymous requests to the login page.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentUserID(c); !ok {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

// CurrentUserID returns the signed-in user, if any.
func CurrentUserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(userIDKey).(uint)
	return id, ok && id != 0
}

func SetSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.IsTLS(),
	})
}

func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
