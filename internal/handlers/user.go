package handlers

import (
	"net/http"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles profile pages and profile edits
type UserHandler struct {
	profiles *services.ProfileService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(profiles *services.ProfileService) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// RegisterProfileRoutes registers profile routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.GET("/profile/:username", h.GetProfile)
	g.POST("/actualizar_perfil", h.UpdateProfile)
	g.POST("/actualizar_estado", h.UpdateMood)
}

// GetProfile renders a profile. Without a username it shows the caller's own
func (h *UserHandler) GetProfile(c echo.Context) error {
	view, err := h.profiles.ViewProfile(c.Request().Context(), currentUser(c), c.Param("username"))
	if err != nil {
		return fail(c, err, "/home")
	}
	return render(c, http.StatusOK, "profile", echo.Map{
		"Title":    view.Owner.Username,
		"View":     view,
		"Networks": models.Networks,
	})
}

// UpdateProfile stores the sanitized profile markup
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Solicitud no válida")
	}
	if err := c.Validate(&req); err != nil {
		setFlash(c, "warning", "El perfil es demasiado largo")
		return c.Redirect(http.StatusFound, "/profile")
	}
	if _, err := h.profiles.UpdateProfileHTML(c.Request().Context(), currentUser(c), req.ProfileHTML); err != nil {
		return fail(c, err, "/profile")
	}
	setFlash(c, "success", "¡Perfil actualizado!")
	return c.Redirect(http.StatusFound, "/profile")
}

// UpdateMood changes the mood line shown in the profile header
func (h *UserHandler) UpdateMood(c echo.Context) error {
	var req models.UpdateMoodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Solicitud no válida")
	}
	if err := c.Validate(&req); err != nil {
		setFlash(c, "warning", "El estado de ánimo es demasiado largo")
		return c.Redirect(http.StatusFound, "/profile")
	}
	if err := h.profiles.UpdateMood(c.Request().Context(), currentUser(c), req.Mood); err != nil {
		return fail(c, err, "/profile")
	}
	setFlash(c, "success", "Estado actualizado")
	return redirectBack(c, "/profile")
}
