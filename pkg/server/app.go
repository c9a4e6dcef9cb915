package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"StockHunter/pkg/config"
	xhttp "StockHunter/pkg/http"
	applogger "StockHunter/pkg/logger"
)

// App encapsulates the gateway lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
	}
}

// Run starts the gateway and blocks until interrupted.
func (a *App) Run() error {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.logger),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("gateway started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("screener_url", a.cfg.Screener.BaseURL),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the HTTP server.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
