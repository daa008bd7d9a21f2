package handlers

import (
	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow requests
type FollowHandler struct {
	relationships *services.RelationshipService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(relationships *services.RelationshipService) *FollowHandler {
	return &FollowHandler{relationships: relationships}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/seguir/:id", h.FollowUser)
	g.POST("/dejar_seguir/:id", h.UnfollowUser)
}

// FollowUser follows a user. Following twice changes nothing
func (h *FollowHandler) FollowUser(c echo.Context) error {
	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.relationships.Follow(c.Request().Context(), currentUser(c), targetID); err != nil {
		return fail(c, err, "/home")
	}
	setFlash(c, "success", "Ahora sigues a este usuario")
	return redirectBack(c, "/home")
}

// UnfollowUser stops following a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.relationships.Unfollow(c.Request().Context(), currentUser(c), targetID); err != nil {
		return fail(c, err, "/home")
	}
	setFlash(c, "info", "Has dejado de seguir a este usuario")
	return redirectBack(c, "/home")
}
