package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes data as a 200 JSON response.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// PassthroughJSON relays a downstream JSON body unchanged with the given status.
func PassthroughJSON(c echo.Context, statusCode int, body []byte) error {
	return c.JSONBlob(statusCode, body)
}

// ErrorResponse writes the uniform error envelope with the given status.
func ErrorResponse(c echo.Context, statusCode int, errValue interface{}) error {
	return c.JSON(statusCode, NewErrorEnvelope(errValue))
}

// ErrorResponsef writes a formatted error envelope.
func ErrorResponsef(c echo.Context, statusCode int, format string, a ...interface{}) error {
	return c.JSON(statusCode, NewErrorEnvelopef(format, a...))
}

// BadRequestResponse writes validation failures in the error envelope.
func BadRequestResponse(c echo.Context, errs interface{}) error {
	return ErrorResponse(c, http.StatusBadRequest, errs)
}
