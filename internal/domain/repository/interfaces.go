package repository

import (
	"context"
	"errors"

	"StockHunter/internal/domain/models"
)

// Downstream transport failures, classified so operators can tell "slow"
// from "down". Anything else from the transport is an internal error.
var (
	// ErrDownstreamTimeout means the call exceeded its configured budget.
	ErrDownstreamTimeout = errors.New("downstream call timed out")
	// ErrDownstreamUnreachable means no connection could be established.
	ErrDownstreamUnreachable = errors.New("downstream service unreachable")
)

// Screener is the downstream screening engine, consumed as a black box.
// Every method performs exactly one attempt; there are no retries.
type Screener interface {
	// Screen forwards a screening request with the long timeout budget.
	Screen(ctx context.Context, req *models.ScreeningRequest) (*models.DownstreamResponse, error)
	// ValidateCredentials checks an API key pair with a short timeout.
	ValidateCredentials(ctx context.Context, req *models.CredentialsRequest) (*models.DownstreamResponse, error)
	// StockCodes lists the supported stock codes with a short timeout.
	StockCodes(ctx context.Context) (*models.DownstreamResponse, error)
	// Health probes the engine's health endpoint with a short timeout.
	Health(ctx context.Context) (*models.DownstreamResponse, error)
}

// Metrics records gateway observability signals.
type Metrics interface {
	RecordOutcome(operation, outcome string)
	RecordDownstreamLatency(operation string, seconds float64)
	RecordMatchedCount(count int)
}
