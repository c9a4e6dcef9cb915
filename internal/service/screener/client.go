package screener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"StockHunter/internal/domain/models"
	"StockHunter/internal/domain/repository"
	xhttp "StockHunter/pkg/http"
)

// Client talks to the Kotlin screening engine over HTTP. Screening runs over
// a large code universe and is slow, so it gets a budget on the order of
// minutes; credential checks, code listing and health probes must answer in
// seconds. Each call class therefore owns its own underlying client.
type Client struct {
	baseURL string

	screen *xhttp.Client
	creds  *xhttp.Client
	codes  *xhttp.Client
	health *xhttp.Client
}

// Option configures Client.
type Option func(*options)

type options struct {
	screenTimeout time.Duration
	credsTimeout  time.Duration
	codesTimeout  time.Duration
	healthTimeout time.Duration
}

// New creates a screening engine client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	o := &options{
		screenTimeout: 5 * time.Minute,
		credsTimeout:  10 * time.Second,
		codesTimeout:  5 * time.Second,
		healthTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Client{
		baseURL: baseURL,
		screen:  xhttp.NewClient(xhttp.WithTimeout(o.screenTimeout)),
		creds:   xhttp.NewClient(xhttp.WithTimeout(o.credsTimeout)),
		codes:   xhttp.NewClient(xhttp.WithTimeout(o.codesTimeout)),
		health:  xhttp.NewClient(xhttp.WithTimeout(o.healthTimeout)),
	}
}

// Screen forwards the validated request verbatim to the engine.
func (c *Client) Screen(ctx context.Context, req *models.ScreeningRequest) (*models.DownstreamResponse, error) {
	return c.call(ctx, c.screen, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/api/v1/screen",
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: req,
	})
}

// ValidateCredentials checks an API key pair against the engine.
func (c *Client) ValidateCredentials(ctx context.Context, req *models.CredentialsRequest) (*models.DownstreamResponse, error) {
	return c.call(ctx, c.creds, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/api/v1/validate-credentials",
		Body:   req,
	})
}

// StockCodes lists the stock codes the engine supports.
func (c *Client) StockCodes(ctx context.Context) (*models.DownstreamResponse, error) {
	return c.call(ctx, c.codes, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/api/v1/stock-codes",
	})
}

// Health probes the engine's health endpoint.
func (c *Client) Health(ctx context.Context) (*models.DownstreamResponse, error) {
	return c.call(ctx, c.health, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/health",
	})
}

func (c *Client) call(ctx context.Context, client *xhttp.Client, opts *xhttp.RequestOptions) (*models.DownstreamResponse, error) {
	resp, err := client.SendRequest(ctx, opts)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	body, err := xhttp.ReadBody(resp)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	return &models.DownstreamResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// classifyTransportError maps a transport failure onto the downstream error
// taxonomy: deadline hits become ErrDownstreamTimeout, failures to establish
// a connection become ErrDownstreamUnreachable, everything else passes
// through untouched for the caller to treat as internal.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", repository.ErrDownstreamTimeout, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %v", repository.ErrDownstreamTimeout, err)
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %v", repository.ErrDownstreamUnreachable, err)
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: %v", repository.ErrDownstreamUnreachable, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %v", repository.ErrDownstreamUnreachable, err)
	}
	return err
}

// WithScreenTimeout overrides the long screening budget.
func WithScreenTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.screenTimeout = d
		}
	}
}

// WithCredentialsTimeout overrides the credential check budget.
func WithCredentialsTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.credsTimeout = d
		}
	}
}

// WithCodesTimeout overrides the stock code listing budget.
func WithCodesTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.codesTimeout = d
		}
	}
}

// WithHealthTimeout overrides the health probe budget.
func WithHealthTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.healthTimeout = d
		}
	}
}
