package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	outcomesTotal     *prometheus.CounterVec
	downstreamLatency *prometheus.HistogramVec
	lastMatchedCount  prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		outcomesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockhunter_gateway_outcomes_total",
				Help: "Gateway operation outcomes by kind",
			},
			[]string{"operation", "outcome"},
		),
		downstreamLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockhunter_downstream_duration_seconds",
				Help:    "Duration of downstream screener calls in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
			},
			[]string{"operation"},
		),
		lastMatchedCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "stockhunter_last_matched_count",
				Help: "Matched stock count reported by the most recent screening",
			},
		),
	}
}

// RecordOutcome records the outcome of a gateway operation.
func (r *Recorder) RecordOutcome(operation, outcome string) {
	r.outcomesTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordDownstreamLatency records how long a downstream call took.
func (r *Recorder) RecordDownstreamLatency(operation string, seconds float64) {
	r.downstreamLatency.WithLabelValues(operation).Observe(seconds)
}

// RecordMatchedCount records the match count of the latest screening run.
func (r *Recorder) RecordMatchedCount(count int) {
	r.lastMatchedCount.Set(float64(count))
}
