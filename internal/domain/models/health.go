package models

// Service status values used in health and API info payloads.
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// HealthStatus is the composite health signal for the gateway and the
// downstream screening engine.
type HealthStatus struct {
	Status    string            `json:"status"`
	Services  map[string]string `json:"services"`
	Timestamp string            `json:"timestamp"`
}

// APIInfo describes the running service.
type APIInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// DownstreamResponse is a downstream reply as seen by the gateway: a status
// code and the raw body. Non-200 statuses are data, not errors.
type DownstreamResponse struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the downstream answered with HTTP 200.
func (r *DownstreamResponse) OK() bool {
	return r != nil && r.StatusCode == 200
}
