package usecase

import (
	"context"
	"time"

	"StockHunter/internal/domain/models"
	"StockHunter/internal/domain/repository"
	applogger "StockHunter/pkg/logger"
)

// HealthAggregator combines the gateway's own liveness with a live probe of
// the screening engine. The gateway is healthy by construction if the probe
// can run at all; every call re-probes, nothing is cached.
type HealthAggregator struct {
	screener repository.Screener
	logger   *applogger.Logger
}

func NewHealthAggregator(s repository.Screener, l *applogger.Logger) *HealthAggregator {
	return &HealthAggregator{screener: s, logger: l}
}

// Check probes the engine and returns the composite status. All probe
// failures look the same: the engine is either healthy or it is not.
func (a *HealthAggregator) Check(ctx context.Context) *models.HealthStatus {
	engineHealthy := false
	resp, err := a.screener.Health(ctx)
	if err != nil {
		if a.logger != nil {
			a.logger.Warn("screening engine health check failed", applogger.Error(err))
		}
	} else {
		engineHealthy = resp.OK()
	}

	status := models.StatusHealthy
	engineStatus := models.StatusHealthy
	if !engineHealthy {
		status = models.StatusDegraded
		engineStatus = models.StatusUnhealthy
	}

	return &models.HealthStatus{
		Status: status,
		Services: map[string]string{
			"gateway":         models.StatusHealthy,
			"kotlin_screener": engineStatus,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
