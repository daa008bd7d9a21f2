package handlers

import (
	"net/http"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// GuestbookHandler handles signing other users' guestbooks
type GuestbookHandler struct {
	guestbook *services.GuestbookService
	profiles  *services.ProfileService
}

// NewGuestbookHandler creates a new GuestbookHandler
func NewGuestbookHandler(guestbook *services.GuestbookService, profiles *services.ProfileService) *GuestbookHandler {
	return &GuestbookHandler{guestbook: guestbook, profiles: profiles}
}

// RegisterGuestbookRoutes registers guestbook routes
func (h *GuestbookHandler) RegisterGuestbookRoutes(g *echo.Group) {
	g.POST("/firmar_libro/:id", h.Sign)
}

func (h *GuestbookHandler) Sign(c echo.Context) error {
	ownerID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	owner, err := h.profiles.User(ctx, ownerID)
	if err != nil {
		return fail(c, err, "/home")
	}
	back := "/profile/" + owner.Username

	var req models.SignGuestbookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Solicitud no válida")
	}
	if err := c.Validate(&req); err != nil {
		setFlash(c, "warning", "El mensaje es demasiado largo")
		return c.Redirect(http.StatusFound, back)
	}

	entry, err := h.guestbook.Sign(ctx, currentUser(c), ownerID, req.Message)
	if err != nil {
		return fail(c, err, back)
	}
	if entry != nil {
		setFlash(c, "success", "¡Gracias por firmar!")
	}
	return c.Redirect(http.StatusFound, back)
}
