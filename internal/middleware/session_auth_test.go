package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type fakeAuth map[string]uint

func (f fakeAuth) Authenticate(_ context.Context, token string) (*models.Session, error) {
	if id, ok := f[token]; ok {
		return &models.Session{ID: "sid-" + token, UserID: id}, nil
	}
	return nil, errors.New("bad token")
}

func newEcho(auth Authenticator) *echo.Echo {
	e := echo.New()
	e.Use(LoadSession(auth))
	e.GET("/open", func(c echo.Context) error {
		id, ok := CurrentUserID(c)
		if !ok {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.JSON(http.StatusOK, echo.Map{"id": id})
	})
	e.GET("/closed", func(c echo.Context) error {
		return c.String(http.StatusOK, "secret")
	}, RequireSession())
	return e
}

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	e := newEcho(fakeAuth{})

	req := httptest.NewRequest(http.MethodGet, "/closed", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestLoadSessionSetsUser(t *testing.T) {
	e := newEcho(fakeAuth{"good": 7})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/closed", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "secret", rec.Body.String())
}

func TestLoadSessionClearsStaleCookie(t *testing.T) {
	e := newEcho(fakeAuth{})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "expired"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "anonymous", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Set-Cookie"), SessionCookie+"=;")
}
