package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"StockHunter/internal/domain/models"
	"StockHunter/internal/domain/repository"
	applogger "StockHunter/pkg/logger"
	"StockHunter/pkg/util"
)

// ScreenOutcomeKind tags the result of one screening forward.
type ScreenOutcomeKind int

const (
	ScreenSuccess ScreenOutcomeKind = iota
	ScreenDownstreamRejected
	ScreenDownstreamTimeout
	ScreenDownstreamUnreachable
	ScreenInternalError
)

// ScreenOutcome is the translated result of validate → forward. Status and
// Body are set for Success and DownstreamRejected; Err for InternalError.
type ScreenOutcome struct {
	Kind   ScreenOutcomeKind
	Status int
	Body   []byte
	Err    error
}

// CredentialOutcomeKind tags the result of a credential check. Unlike
// screening, downstream rejection is a query answer here, not an error.
type CredentialOutcomeKind int

const (
	CredentialValid CredentialOutcomeKind = iota
	CredentialInvalid
	CredentialInternalError
)

// CredentialOutcome carries credential validity or an internal failure.
type CredentialOutcome struct {
	Kind    CredentialOutcomeKind
	Message string
	Err     error
}

// CodesOutcomeKind tags the result of a stock code listing.
type CodesOutcomeKind int

const (
	CodesSuccess CodesOutcomeKind = iota
	CodesRejected
	CodesInternalError
)

// CodesOutcome carries the stock code listing result.
type CodesOutcome struct {
	Kind   CodesOutcomeKind
	Status int
	Body   []byte
	Err    error
}

// Gateway orchestrates the forwarding contract: each operation makes exactly
// one downstream attempt and classifies whatever comes back.
type Gateway struct {
	screener repository.Screener
	metrics  repository.Metrics
	logger   *applogger.Logger
}

func NewGateway(s repository.Screener, m repository.Metrics, l *applogger.Logger) *Gateway {
	return &Gateway{screener: s, metrics: m, logger: l}
}

// Screen forwards an already-validated request to the engine and translates
// the reply. The body is relayed untouched; matchedCount is read only for
// logging and metrics.
func (g *Gateway) Screen(ctx context.Context, req *models.ScreeningRequest) *ScreenOutcome {
	req.NormalizeTargetCodes()

	g.logInfo("screening request received",
		applogger.Bool("ma112_enabled", req.MA112Enabled),
		applogger.Bool("bb_enabled", req.BBEnabled),
		applogger.Int("target_codes", len(req.TargetCodes)),
	)

	start := time.Now()
	resp, err := g.screener.Screen(ctx, req)
	g.recordLatency("screen", time.Since(start))

	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDownstreamTimeout):
			g.logError("screening request timed out", err)
			g.recordOutcome("screen", "timeout")
			return &ScreenOutcome{Kind: ScreenDownstreamTimeout, Err: err}
		case errors.Is(err, repository.ErrDownstreamUnreachable):
			g.logError("cannot connect to screening engine", err)
			g.recordOutcome("screen", "unreachable")
			return &ScreenOutcome{Kind: ScreenDownstreamUnreachable, Err: err}
		default:
			g.logError("unexpected error during screening", err)
			g.recordOutcome("screen", "internal_error")
			return &ScreenOutcome{Kind: ScreenInternalError, Err: err}
		}
	}

	if !resp.OK() {
		g.logErrorFields("screening engine rejected request",
			applogger.Int("status", resp.StatusCode),
			applogger.String("body", string(resp.Body)),
		)
		g.recordOutcome("screen", "rejected")
		return &ScreenOutcome{Kind: ScreenDownstreamRejected, Status: resp.StatusCode, Body: resp.Body}
	}

	var summary models.ScreeningSummary
	if err := json.Unmarshal(resp.Body, &summary); err == nil {
		g.logInfo("screening completed", applogger.Int("matched_count", summary.MatchedCount))
		if g.metrics != nil {
			g.metrics.RecordMatchedCount(summary.MatchedCount)
		}
	}
	g.recordOutcome("screen", "success")
	return &ScreenOutcome{Kind: ScreenSuccess, Status: resp.StatusCode, Body: resp.Body}
}

// ValidateCredentials asks the engine to verify a key pair. Downstream
// non-200 folds into an invalid answer; only transport failures are errors.
func (g *Gateway) ValidateCredentials(ctx context.Context, req *models.CredentialsRequest) *CredentialOutcome {
	g.logInfo("validating API credentials", applogger.String("app_key", util.MaskKey(req.AppKey)))

	start := time.Now()
	resp, err := g.screener.ValidateCredentials(ctx, req)
	g.recordLatency("validate_credentials", time.Since(start))

	if err != nil {
		g.logError("credential validation error", err)
		g.recordOutcome("validate_credentials", "internal_error")
		return &CredentialOutcome{Kind: CredentialInternalError, Err: err}
	}

	if resp.OK() {
		g.logInfo("credentials validated successfully")
		g.recordOutcome("validate_credentials", "valid")
		return &CredentialOutcome{Kind: CredentialValid, Message: "인증 성공"}
	}

	message := "인증 실패"
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body, &payload); err == nil && payload.Message != "" {
		message = payload.Message
	}
	g.logWarn("invalid credentials", applogger.Int("status", resp.StatusCode))
	g.recordOutcome("validate_credentials", "invalid")
	return &CredentialOutcome{Kind: CredentialInvalid, Message: message}
}

// StockCodes fetches the supported stock code list.
func (g *Gateway) StockCodes(ctx context.Context) *CodesOutcome {
	start := time.Now()
	resp, err := g.screener.StockCodes(ctx)
	g.recordLatency("stock_codes", time.Since(start))

	if err != nil {
		g.logError("error fetching stock codes", err)
		g.recordOutcome("stock_codes", "internal_error")
		return &CodesOutcome{Kind: CodesInternalError, Err: err}
	}

	if !resp.OK() {
		g.logWarn("stock code listing rejected", applogger.Int("status", resp.StatusCode))
		g.recordOutcome("stock_codes", "rejected")
		return &CodesOutcome{Kind: CodesRejected, Status: resp.StatusCode, Body: resp.Body}
	}

	g.recordOutcome("stock_codes", "success")
	return &CodesOutcome{Kind: CodesSuccess, Status: resp.StatusCode, Body: resp.Body}
}

func (g *Gateway) recordOutcome(op, outcome string) {
	if g.metrics != nil {
		g.metrics.RecordOutcome(op, outcome)
	}
}

func (g *Gateway) recordLatency(op string, d time.Duration) {
	if g.metrics != nil {
		g.metrics.RecordDownstreamLatency(op, d.Seconds())
	}
}

func (g *Gateway) logInfo(msg string, fields ...applogger.Field) {
	if g.logger != nil {
		g.logger.Info(msg, fields...)
	}
}

func (g *Gateway) logWarn(msg string, fields ...applogger.Field) {
	if g.logger != nil {
		g.logger.Warn(msg, fields...)
	}
}

func (g *Gateway) logErrorFields(msg string, fields ...applogger.Field) {
	if g.logger != nil {
		g.logger.Error(msg, fields...)
	}
}

func (g *Gateway) logError(msg string, err error) {
	g.logErrorFields(msg, applogger.Error(err))
}
