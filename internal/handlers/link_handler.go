package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LinkHandler redirects to profiles on external networks
type LinkHandler struct{}

func NewLinkHandler() *LinkHandler {
	return &LinkHandler{}
}

func (h *LinkHandler) RegisterLinkRoutes(g *echo.Group) {
	g.GET("/url/:network/:username", h.Redirect)
}

func (h *LinkHandler) Redirect(c echo.Context) error {
	target, err := services.ExternalProfileURL(c.Param("network"), c.Param("username"))
	if errors.Is(err, services.ErrUnknownNetwork) || errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Red social no soportada")
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, target)
}
