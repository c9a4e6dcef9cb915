package di

import (
	"fmt"

	"StockHunter/internal/domain/repository"
	"StockHunter/internal/handler/api"
	"StockHunter/internal/service/screener"
	"StockHunter/internal/usecase"
	"StockHunter/pkg/config"
	xhttp "StockHunter/pkg/http"
	applogger "StockHunter/pkg/logger"
	pkgmetrics "StockHunter/pkg/metrics"
	"StockHunter/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return pkgmetrics.New()
}

// ProvideScreener creates the downstream screening engine client.
func ProvideScreener(cfg *config.Config) repository.Screener {
	return screener.New(cfg.Screener.BaseURL,
		screener.WithScreenTimeout(cfg.Screener.ScreenTimeout),
		screener.WithCredentialsTimeout(cfg.Screener.CredentialsTimeout),
		screener.WithCodesTimeout(cfg.Screener.CodesTimeout),
		screener.WithHealthTimeout(cfg.Screener.HealthTimeout),
	)
}

// ProvideGateway creates the forwarding use case.
func ProvideGateway(s repository.Screener, m repository.Metrics, l *applogger.Logger) *usecase.Gateway {
	return usecase.NewGateway(s, m, l)
}

// ProvideHealthAggregator creates the composite health use case.
func ProvideHealthAggregator(s repository.Screener, l *applogger.Logger) *usecase.HealthAggregator {
	return usecase.NewHealthAggregator(s, l)
}

// ProvideGatewayHandler creates the HTTP handler.
func ProvideGatewayHandler(cfg *config.Config, l *applogger.Logger, gw *usecase.Gateway, health *usecase.HealthAggregator) xhttp.Handler {
	return api.NewGatewayHandler(l, gw, health, cfg.Web.HTMLPaths)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler) *server.App {
	return server.New(cfg, l, h)
}
