package handlers

import (
	"net/http"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FriendshipHandler handles friend requests, their answers and unfriending
type FriendshipHandler struct {
	relationships *services.RelationshipService
	profiles      *services.ProfileService
}

// NewFriendshipHandler creates a new FriendshipHandler
func NewFriendshipHandler(relationships *services.RelationshipService, profiles *services.ProfileService) *FriendshipHandler {
	return &FriendshipHandler{relationships: relationships, profiles: profiles}
}

// RegisterFriendshipRoutes registers friendship-related routes
func (h *FriendshipHandler) RegisterFriendshipRoutes(g *echo.Group) {
	g.GET("/amigos", h.GetFriends)
	g.POST("/agregar_amigo/:id", h.SendFriendRequest)
	g.POST("/responder_solicitud/:id/:accion", h.RespondToRequest)
	g.POST("/eliminar_amigo/:id", h.DeleteFriend)
}

func (h *FriendshipHandler) GetFriends(c echo.Context) error {
	friends, err := h.relationships.ListFriends(c.Request().Context(), currentUser(c))
	if err != nil {
		return fail(c, err, "/home")
	}
	return render(c, http.StatusOK, "amigos", echo.Map{"Title": "Amigos", "Friends": friends})
}

// SendFriendRequest asks the target user for friendship
func (h *FriendshipHandler) SendFriendRequest(c echo.Context) error {
	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	target, err := h.profiles.User(ctx, targetID)
	if err != nil {
		return fail(c, err, "/home")
	}
	back := "/profile/" + target.Username

	if _, err := h.relationships.RequestFriendship(ctx, currentUser(c), targetID); err != nil {
		return fail(c, err, back)
	}
	setFlash(c, "success", "Solicitud de amistad enviada")
	return c.Redirect(http.StatusFound, back)
}

// RespondToRequest accepts, rejects or dismisses a notification
func (h *FriendshipHandler) RespondToRequest(c echo.Context) error {
	notificationID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	decision, err := services.ParseDecision(c.Param("accion"))
	if err != nil {
		return fail(c, err, "/notificaciones")
	}

	notification, err := h.relationships.RespondToRequest(c.Request().Context(), notificationID, currentUser(c), decision)
	if err != nil {
		return fail(c, err, "/notificaciones")
	}

	switch notification.Status {
	case models.StatusAccepted:
		setFlash(c, "success", "¡Solicitud de amistad aceptada!")
	case models.StatusRejected:
		setFlash(c, "info", "Solicitud de amistad rechazada")
	default:
		setFlash(c, "info", "Notificación descartada")
	}
	return c.Redirect(http.StatusFound, "/notificaciones")
}

// DeleteFriend removes the friendship in both directions
func (h *FriendshipHandler) DeleteFriend(c echo.Context) error {
	friendID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.relationships.RemoveFriendship(c.Request().Context(), currentUser(c), friendID); err != nil {
		return fail(c, err, "/amigos")
	}
	setFlash(c, "info", "Amigo eliminado")
	return c.Redirect(http.StatusFound, "/amigos")
}
