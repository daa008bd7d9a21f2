package router

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/red-social/backend/internal/metrics"
	"github.com/anonto42/red-social/backend/internal/middleware"
	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
	"github.com/anonto42/red-social/backend/internal/testutil"
	"github.com/anonto42/red-social/backend/pkg/config"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type app struct {
	t   *testing.T
	db  *gorm.DB
	srv *httptest.Server
}

func newApp(t *testing.T) *app {
	t.Helper()
	db := testutil.NewDB(t)

	e := echo.New()
	m := metrics.New()
	SetupMiddleware(e, m)
	SetupRoutes(e, Dependencies{
		DB:      db,
		Metrics: m,
		Config: &config.Config{
			SessionSecret: "router-test-secret",
			SessionTTL:    time.Hour,
			HomeFeedSize:  10,
		},
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return &app{t: t, db: db, srv: srv}
}

// browser keeps its own cookies and never follows redirects.
type browser struct {
	app    *app
	client *http.Client
}

func (a *app) browser() *browser {
	jar, err := cookiejar.New(nil)
	require.NoError(a.t, err)
	return &browser{app: a, client: &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}}
}

type page struct {
	status   int
	location string
	body     string
	header   http.Header
}

func (b *browser) do(req *http.Request) page {
	b.app.t.Helper()
	resp, err := b.client.Do(req)
	require.NoError(b.app.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(b.app.t, err)
	return page{status: resp.StatusCode, location: resp.Header.Get("Location"), body: string(body), header: resp.Header}
}

func (b *browser) get(path string) page {
	b.app.t.Helper()
	req, err := http.NewRequest(http.MethodGet, b.app.srv.URL+path, nil)
	require.NoError(b.app.t, err)
	return b.do(req)
}

func (b *browser) post(path string, form url.Values) page {
	b.app.t.Helper()
	req, err := http.NewRequest(http.MethodPost, b.app.srv.URL+path, strings.NewReader(form.Encode()))
	require.NoError(b.app.t, err)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return b.do(req)
}

func (b *browser) signUp(username string) {
	b.app.t.Helper()
	creds := url.Values{"username": {username}, "password": {"password1"}}

	p := b.post("/registro", creds)
	require.Equal(b.app.t, http.StatusFound, p.status)
	require.Equal(b.app.t, "/login", p.location)

	p = b.post("/login", creds)
	require.Equal(b.app.t, http.StatusFound, p.status)
	require.Equal(b.app.t, "/home", p.location)
}

func (b *browser) sessionToken() string {
	u, _ := url.Parse(b.app.srv.URL)
	for _, c := range b.client.Jar.Cookies(u) {
		if c.Name == middleware.SessionCookie {
			return c.Value
		}
	}
	return ""
}

func (a *app) user(username string) *models.User {
	a.t.Helper()
	u, err := repositories.NewGormUserRepository(a.db).GetUserByUsername(context.Background(), username)
	require.NoError(a.t, err)
	return u
}

func (a *app) count(model any) int64 {
	a.t.Helper()
	var n int64
	require.NoError(a.t, a.db.Model(model).Count(&n).Error)
	return n
}

func id(u *models.User) string {
	return idOf(u.ID)
}

func idOf(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
