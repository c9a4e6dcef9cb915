package api

import (
	"net/http"
	"os"
	"time"

	"StockHunter/internal/domain/models"
	"StockHunter/internal/usecase"
	xhttp "StockHunter/pkg/http"
	xlogger "StockHunter/pkg/logger"

	"github.com/labstack/echo/v4"
)

const (
	serviceName    = "Stock Hunter API Gateway"
	serviceVersion = "1.0.0"

	msgScreenTimeout     = "스크리닝 요청 시간 초과. 잠시 후 다시 시도해주세요."
	msgScreenUnreachable = "스크리닝 서비스에 연결할 수 없습니다."
	msgScreenError       = "스크리닝 중 오류 발생: %v"
	msgCredentialsError  = "인증 검증 중 오류 발생: %v"
	msgCodesRejected     = "종목 코드 조회 실패"
	msgCodesError        = "종목 코드 조회 중 오류 발생: %v"
)

// fallbackHTML is served when no UI file is found on disk.
const fallbackHTML = `<html>
    <head><title>Stock Hunter</title></head>
    <body style="font-family: sans-serif; padding: 50px; text-align: center;">
        <h1>Stock Hunter API</h1>
        <p>HTML 파일을 찾을 수 없습니다.</p>
        <p>stock_screener.html 파일이 올바른 위치에 있는지 확인하세요.</p>
        <hr>
        <p><a href="/health">Health Check</a> | <a href="/api">API Info</a></p>
    </body>
</html>`

// GatewayHandler exposes the gateway's HTTP surface and maps operation
// outcomes onto statuses: 400 fix-your-request, 503/504 try-again-later,
// 500 our-bug, passthrough for downstream business errors.
type GatewayHandler struct {
	logger    *xlogger.Logger
	gw        *usecase.Gateway
	health    *usecase.HealthAggregator
	htmlPaths []string
}

func NewGatewayHandler(logger *xlogger.Logger, gw *usecase.Gateway, health *usecase.HealthAggregator, htmlPaths []string) *GatewayHandler {
	return &GatewayHandler{logger: logger, gw: gw, health: health, htmlPaths: htmlPaths}
}

func (h *GatewayHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/api", h.APIInfo)
	e.GET("/health", h.Health)

	g := e.Group("/api/v1")
	g.POST("/screen", h.Screen)
	g.POST("/validate-credentials", h.ValidateCredentials)
	g.GET("/stock-codes", h.StockCodes)
}

// Root serves the screening UI, falling back to an inline page.
func (h *GatewayHandler) Root(c echo.Context) error {
	for _, path := range h.htmlPaths {
		b, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if h.logger != nil {
			h.logger.Info("serving UI", xlogger.String("path", path))
		}
		return c.HTMLBlob(http.StatusOK, b)
	}
	return c.HTML(http.StatusOK, fallbackHTML)
}

// APIInfo describes the running gateway.
func (h *GatewayHandler) APIInfo(c echo.Context) error {
	return xhttp.SuccessResponse(c, &models.APIInfo{
		Service:   serviceName,
		Version:   serviceVersion,
		Status:    "running",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Health reports the composite status. Probe failures degrade the payload,
// never the HTTP status.
func (h *GatewayHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.health.Check(c.Request().Context()))
}

// Screen validates the filter specification and forwards it to the engine.
// Validation failures never reach the downstream call.
func (h *GatewayHandler) Screen(c echo.Context) error {
	req := &models.ScreeningRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	outcome := h.gw.Screen(c.Request().Context(), req)
	switch outcome.Kind {
	case usecase.ScreenSuccess:
		return xhttp.PassthroughJSON(c, http.StatusOK, outcome.Body)
	case usecase.ScreenDownstreamRejected:
		if len(outcome.Body) == 0 {
			return xhttp.ErrorResponse(c, outcome.Status, "Unknown error")
		}
		return xhttp.PassthroughJSON(c, outcome.Status, outcome.Body)
	case usecase.ScreenDownstreamTimeout:
		return xhttp.ErrorResponse(c, http.StatusGatewayTimeout, msgScreenTimeout)
	case usecase.ScreenDownstreamUnreachable:
		return xhttp.ErrorResponse(c, http.StatusServiceUnavailable, msgScreenUnreachable)
	default:
		return xhttp.ErrorResponsef(c, http.StatusInternalServerError, msgScreenError, outcome.Err)
	}
}

// ValidateCredentials answers validity as payload, always 200 at the gateway
// level; only transport failures become a 500.
func (h *GatewayHandler) ValidateCredentials(c echo.Context) error {
	req := &models.CredentialsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	outcome := h.gw.ValidateCredentials(c.Request().Context(), req)
	switch outcome.Kind {
	case usecase.CredentialValid:
		return xhttp.SuccessResponse(c, &models.CredentialsResult{Valid: true, Message: outcome.Message})
	case usecase.CredentialInvalid:
		return xhttp.SuccessResponse(c, &models.CredentialsResult{Valid: false, Message: outcome.Message})
	default:
		return xhttp.ErrorResponsef(c, http.StatusInternalServerError, msgCredentialsError, outcome.Err)
	}
}

// StockCodes relays the engine's code list.
func (h *GatewayHandler) StockCodes(c echo.Context) error {
	outcome := h.gw.StockCodes(c.Request().Context())
	switch outcome.Kind {
	case usecase.CodesSuccess:
		return xhttp.PassthroughJSON(c, http.StatusOK, outcome.Body)
	case usecase.CodesRejected:
		return xhttp.ErrorResponse(c, outcome.Status, msgCodesRejected)
	default:
		return xhttp.ErrorResponsef(c, http.StatusInternalServerError, msgCodesError, outcome.Err)
	}
}
