package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	applogger "StockHunter/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Recover converts any panic into the uniform gateway error envelope.
// This is the last line of defense: no failure leaves the process without
// a structured JSON body.
func Recover(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					if l != nil {
						l.Error("panic recovered",
							applogger.Error(err),
							applogger.String("stack", string(debug.Stack())),
						)
					}
					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"error":     "Internal server error",
						"detail":    err.Error(),
						"timestamp": time.Now().Format(time.RFC3339),
					})
				}
			}()
			return next(c)
		}
	}
}
