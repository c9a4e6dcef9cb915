package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newCORSEcho() *echo.Echo {
	e := echo.New()
	e.Use(CORS(CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.POST("/api/v1/screen", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestCORSAnswersPreflightInline(t *testing.T) {
	e := newCORSEcho()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/screen", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:8080")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("unexpected allow-origin %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPost) {
		t.Errorf("allow-methods %q must list POST", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, echo.HeaderContentType) {
		t.Errorf("allow-headers %q must list Content-Type", got)
	}
}

func TestCORSDecoratesActualRequests(t *testing.T) {
	e := newCORSEcho()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/screen", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:8080")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected handler to run, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("unexpected allow-origin %q", got)
	}
}
