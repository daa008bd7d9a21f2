package handlers

import (
	"net/http"

	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// NotificationHandler lists pending notifications
type NotificationHandler struct {
	relationships *services.RelationshipService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(relationships *services.RelationshipService) *NotificationHandler {
	return &NotificationHandler{relationships: relationships}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notificaciones", h.GetNotifications)
}

// GetNotifications shows the caller's pending notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	list, err := h.relationships.PendingNotifications(c.Request().Context(), currentUser(c))
	if err != nil {
		return fail(c, err, "/home")
	}
	return render(c, http.StatusOK, "notificaciones", echo.Map{
		"Title":         "Notificaciones",
		"Notifications": list,
	})
}
