package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/anonto42/red-social/backend/internal/middleware"
	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

const flashCookie = "flash"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

func setFlash(c echo.Context, kind, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		Expires:  time.Now().Add(time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads the pending flash message and removes it.
func popFlash(c echo.Context) *Flash {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(raw, "|")
	if !ok {
		return &Flash{Kind: "info", Message: raw}
	}
	return &Flash{Kind: kind, Message: message}
}

// render fills in the layout fields every page shares.
func render(c echo.Context, code int, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["Flash"] = popFlash(c)
	if _, ok := data["SignedIn"]; !ok {
		_, signedIn := middleware.CurrentUserID(c)
		data["SignedIn"] = signedIn
	}
	return c.Render(code, name, data)
}

// redirectBack sends the client to the page it came from when that page is on
// this host, otherwise to fallback.
func redirectBack(c echo.Context, fallback string) error {
	if ref := c.Request().Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && (u.Host == "" || u.Host == c.Request().Host) && strings.HasPrefix(u.Path, "/") {
			return c.Redirect(http.StatusFound, u.RequestURI())
		}
	}
	return c.Redirect(http.StatusFound, fallback)
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Recurso no encontrado")
	}
	return uint(id), nil
}

func currentUser(c echo.Context) uint {
	id, _ := middleware.CurrentUserID(c)
	return id
}

var domainMessages = []struct {
	err     error
	message string
}{
	{services.ErrPermissionDenied, "No tienes permiso para realizar esta acción"},
	{services.ErrSelfRelation, "No puedes hacer eso contigo mismo"},
	{services.ErrAlreadyFriends, "Ya son amigos"},
	{services.ErrRequestPending, "Ya hay una solicitud de amistad pendiente"},
	{services.ErrAlreadyResolved, "Esta notificación ya fue respondida"},
	{services.ErrNotActionable, "Esta notificación no admite esa acción"},
	{services.ErrInvalidDecision, "Acción no válida"},
	{services.ErrNotFriends, "Solo puedes enviar mensajes a tus amigos"},
	{services.ErrSelfGuestbook, "No puedes firmar tu propio libro de visitas"},
	{services.ErrGuestbookClosed, "El libro de visitas está cerrado"},
	{services.ErrUsernameTaken, "El nombre de usuario ya existe"},
	{services.ErrPasswordTooLong, "La contraseña es demasiado larga"},
	{services.ErrInvalidCredentials, "Usuario o contraseña incorrectos"},
	{services.ErrUnknownNetwork, "Red social no soportada"},
}

func domainMessage(err error) (string, bool) {
	for _, m := range domainMessages {
		if errors.Is(err, m.err) {
			return m.message, true
		}
	}
	return "", false
}

// fail turns a service error into a response. Rule violations become a
// warning flash and a redirect; missing records become a 404.
func fail(c echo.Context, err error, fallback string) error {
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Recurso no encontrado")
	}
	if msg, ok := domainMessage(err); ok {
		setFlash(c, "warning", msg)
		return redirectBack(c, fallback)
	}
	log.Printf("%s %s failed: %v", c.Request().Method, c.Path(), err)
	return echo.NewHTTPError(http.StatusInternalServerError, "Error interno del servidor")
}
