package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORSConfig lists the methods and headers the gateway accepts cross-origin.
type CORSConfig struct {
	AllowMethods []string
	AllowHeaders []string
}

// CORS opens the gateway to browser clients from any origin. The screening
// UI may be served from a different host than the API, so every response
// carries an allow-all origin header and preflights are answered inline
// without reaching a handler.
func CORS(cfg CORSConfig) echo.MiddlewareFunc {
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", "*")
			if allowMethods != "" {
				h.Set("Access-Control-Allow-Methods", allowMethods)
			}
			if allowHeaders != "" {
				h.Set("Access-Control-Allow-Headers", allowHeaders)
			}

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
