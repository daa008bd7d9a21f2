package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// SettingsHandler handles the privacy and notification configuration
type SettingsHandler struct {
	settings *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settings *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// RegisterSettingsRoutes registers settings routes
func (h *SettingsHandler) RegisterSettingsRoutes(g *echo.Group) {
	g.GET("/configuracion", h.GetSettings)
	g.POST("/configuracion", h.UpdateSettings)
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	prefs, err := h.settings.Get(c.Request().Context(), currentUser(c))
	if err != nil {
		return fail(c, err, "/home")
	}
	return render(c, http.StatusOK, "configuracion", echo.Map{
		"Title":    "Configuración",
		"Settings": prefs,
		"Networks": models.Networks,
	})
}

// UpdateSettings merges the submitted fields and answers with JSON
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	req, err := bindSettings(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Datos de configuración no válidos"})
	}

	prefs, err := h.settings.Update(c.Request().Context(), currentUser(c), *req)
	if err != nil {
		if msg, ok := domainMessage(err); ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": msg})
		}
		log.Printf("Failed to update settings: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "No se pudo guardar la configuración"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "configuracion": prefs})
}

var privacyAliases = map[string]models.PrivacyLevel{
	"publico": models.PrivacyPublic,
	"público": models.PrivacyPublic,
	"public":  models.PrivacyPublic,
	"amigos":  models.PrivacyFriends,
	"friends": models.PrivacyFriends,
	"privado": models.PrivacyPrivate,
	"private": models.PrivacyPrivate,
}

var themeAliases = map[string]models.Theme{
	"claro":  models.ThemeLight,
	"light":  models.ThemeLight,
	"oscuro": models.ThemeDark,
	"dark":   models.ThemeDark,
}

// bindSettings reads a partial update from a JSON body or from form fields.
// Only keys present in the request are set.
func bindSettings(c echo.Context) (*models.UpdateSettingsRequest, error) {
	req := &models.UpdateSettingsRequest{}
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := c.Bind(req); err != nil {
			return nil, errors.New("Solicitud no válida")
		}
		if req.Privacy != nil {
			if level, ok := privacyAliases[strings.ToLower(string(*req.Privacy))]; ok {
				req.Privacy = &level
			}
		}
		if req.Theme != nil {
			if theme, ok := themeAliases[strings.ToLower(string(*req.Theme))]; ok {
				req.Theme = &theme
			}
		}
		return req, nil
	}

	form, err := c.FormParams()
	if err != nil {
		return nil, errors.New("Solicitud no válida")
	}

	if v, ok := formValue(form, "privacidad_perfil"); ok {
		level, known := privacyAliases[strings.ToLower(v)]
		if !known {
			return nil, errors.New("Nivel de privacidad no válido")
		}
		req.Privacy = &level
	}
	if v, ok := formValue(form, "tema"); ok {
		theme, known := themeAliases[strings.ToLower(v)]
		if !known {
			return nil, errors.New("Tema no válido")
		}
		req.Theme = &theme
	}

	toggles := []struct {
		key string
		dst **bool
	}{
		{"mostrar_estado", &req.ShowMood},
		{"notificaciones_email", &req.EmailNotifications},
		{"notificaciones_mensajes", &req.MessageNotifications},
		{"notificaciones_amigos", &req.FriendNotifications},
		{"libro_visitas", &req.GuestbookOpen},
	}
	for _, t := range toggles {
		v, ok := formValue(form, t.key)
		if !ok {
			continue
		}
		b, err := parseToggle(v)
		if err != nil {
			return nil, err
		}
		*t.dst = &b
	}

	for _, n := range models.Networks {
		if v, ok := formValue(form, string(n)); ok {
			if req.Handles == nil {
				req.Handles = make(map[models.Network]string)
			}
			req.Handles[n] = v
		}
	}
	return req, nil
}

func formValue(form url.Values, key string) (string, bool) {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return strings.TrimSpace(values[len(values)-1]), true
}

func parseToggle(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "1", "true", "on", "si", "sí", "yes":
		return true, nil
	case "0", "false", "off", "no", "":
		return false, nil
	}
	return false, errors.New("Valor no válido: " + v)
}
