package handlers

import (
	"net/http"

	"github.com/anonto42/red-social/backend/internal/middleware"
	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// HomeHandler serves the landing page, the home feed and post creation
type HomeHandler struct {
	posts         *services.PostService
	profiles      *services.ProfileService
	relationships *services.RelationshipService
	messages      *services.MessageService
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(posts *services.PostService, profiles *services.ProfileService, relationships *services.RelationshipService, messages *services.MessageService) *HomeHandler {
	return &HomeHandler{posts: posts, profiles: profiles, relationships: relationships, messages: messages}
}

// RegisterPublicRoutes registers the landing page
func (h *HomeHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/", h.Index)
}

// RegisterHomeRoutes registers the feed routes
func (h *HomeHandler) RegisterHomeRoutes(g *echo.Group) {
	g.GET("/home", h.Home)
	g.POST("/publicar", h.Publish)
}

func (h *HomeHandler) Index(c echo.Context) error {
	if _, ok := middleware.CurrentUserID(c); ok {
		return c.Redirect(http.StatusFound, "/home")
	}
	return render(c, http.StatusOK, "index", echo.Map{"Title": "Bienvenido"})
}

// Home shows the newest posts, the user directory and the notification badge
func (h *HomeHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUser(c)

	me, err := h.profiles.User(ctx, userID)
	if err != nil {
		return fail(c, err, "/")
	}
	feed, err := h.posts.Feed(ctx)
	if err != nil {
		return fail(c, err, "/")
	}
	users, err := h.profiles.Directory(ctx)
	if err != nil {
		return fail(c, err, "/")
	}
	pending, err := h.relationships.PendingCount(ctx, userID)
	if err != nil {
		return fail(c, err, "/")
	}
	unread, err := h.messages.UnreadBadge(ctx, userID)
	if err != nil {
		return fail(c, err, "/")
	}

	others := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != userID {
			others = append(others, u)
		}
	}

	return render(c, http.StatusOK, "home", echo.Map{
		"Title":        "Inicio",
		"Me":           me,
		"Posts":        feed,
		"Users":        others,
		"PendingCount": pending,
		"UnreadCount":  unread,
	})
}

// Publish creates a status post. Blank posts are ignored
func (h *HomeHandler) Publish(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Solicitud no válida")
	}
	if err := c.Validate(&req); err != nil {
		setFlash(c, "warning", "El mensaje es demasiado largo")
		return c.Redirect(http.StatusFound, "/home")
	}
	if _, err := h.posts.Create(c.Request().Context(), currentUser(c), req.Body); err != nil {
		return fail(c, err, "/home")
	}
	return c.Redirect(http.StatusFound, "/home")
}
