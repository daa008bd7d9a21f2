package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders the error page for browsers and keeps Echo's JSON
// body for API clients.
func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Error interno del servidor"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		}
		if code == http.StatusNotFound && (he == nil || he.Message == http.StatusText(http.StatusNotFound)) {
			message = "Página no encontrada"
		}

		if !wantsHTML(c) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}
		if code >= http.StatusInternalServerError {
			log.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		}
		if rerr := render(c, code, "error", echo.Map{"Title": "Error", "Code": code, "Message": message}); rerr != nil {
			log.Printf("Failed to render error page: %v", rerr)
			_ = c.String(code, message)
		}
	}
}

func wantsHTML(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	if accept == "" {
		return true
	}
	return strings.Contains(accept, echo.MIMETextHTML) || strings.Contains(accept, "*/*")
}
