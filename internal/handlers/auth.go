package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/red-social/backend/internal/middleware"
	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterAuthRoutes registers the public authentication routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.GET("/login", h.LoginForm)
	g.POST("/login", h.Login)
	g.GET("/registro", h.RegisterForm)
	g.POST("/registro", h.Register)
	g.GET("/logout", h.Logout)
}

func (h *AuthHandler) LoginForm(c echo.Context) error {
	if _, ok := middleware.CurrentUserID(c); ok {
		return c.Redirect(http.StatusFound, "/home")
	}
	return render(c, http.StatusOK, "login", echo.Map{"Title": "Iniciar sesión"})
}

// Login checks the credentials and sets the session cookie
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Solicitud no válida")
	}
	if err := c.Validate(&req); err != nil {
		setFlash(c, "warning", "Usuario y contraseña son obligatorios")
		return c.Redirect(http.StatusFound, "/login")
	}

	token, _, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		setFlash(c, "warning", "Usuario o contraseña incorrectos")
		return c.Redirect(http.StatusFound, "/login")
	}
	if err != nil {
		return fail(c, err, "/login")
	}

	middleware.SetSessionCookie(c, token, int(h.auth.SessionTTL().Seconds()))
	setFlash(c, "success", "¡Bienvenido de vuelta!")
	return c.Redirect(http.StatusFound, "/home")
}

func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return render(c, http.StatusOK, "registro", echo.Map{"Title": "Registro"})
}

// Register creates a new account. The user signs in afterwards.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Solicitud no válida")
	}
	if err := c.Validate(&req); err != nil {
		setFlash(c, "warning", "El usuario debe tener entre 3 y 80 letras o números y la contraseña al menos 6 caracteres")
		return c.Redirect(http.StatusFound, "/registro")
	}

	if _, err := h.auth.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			setFlash(c, "warning", "El nombre de usuario ya existe")
			return c.Redirect(http.StatusFound, "/registro")
		}
		return fail(c, err, "/registro")
	}

	setFlash(c, "success", "¡Registro exitoso!")
	return c.Redirect(http.StatusFound, "/login")
}

// Logout revokes the session and clears the cookie
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			return fail(c, err, "/")
		}
	}
	middleware.ClearSessionCookie(c)
	setFlash(c, "info", "¡Hasta pronto!")
	return c.Redirect(http.StatusFound, "/")
}
