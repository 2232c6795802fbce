// Package middleware provides cross-cutting concerns for the match
// engine, currently the Prometheus-backed metrics collector.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It provides real-time monitoring of ranking throughput,
// scoring outcomes and latency for the match engine.
type PrometheusMetrics struct {
	operationLatency *prometheus.HistogramVec
	eventCounter     *prometheus.CounterVec
	stateGauges      *prometheus.GaugeVec
	observations     *prometheus.HistogramVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and registers
// all metrics in the given registerer. Pass prometheus.DefaultRegisterer
// in production; tests use a fresh registry to avoid duplicate
// registration.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		operationLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "match_engine_operation_duration_seconds",
				Help:    "Execution time of match engine operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "component"},
		),
		eventCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "match_engine_events_total",
				Help: "Counts of match engine events such as candidates scored or skipped.",
			},
			[]string{"metric"},
		),
		stateGauges: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "match_engine_state",
				Help: "Current state values for the match engine.",
			},
			[]string{"metric"},
		),
		observations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "match_engine_observations",
				Help:    "Distributions observed by the match engine, e.g. best match scores.",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
			[]string{"metric"},
		),
	}
}

// RecordLatency records the execution time of an operation.
func (pm *PrometheusMetrics) RecordLatency(operation string, duration time.Duration, labels map[string]string) {
	component, ok := labels["component"]
	if !ok {
		component = "unknown"
	}
	pm.operationLatency.WithLabelValues(operation, component).Observe(duration.Seconds())
}

// RecordCounter increments a counter metric.
func (pm *PrometheusMetrics) RecordCounter(metric string, value float64, _ map[string]string) {
	pm.eventCounter.WithLabelValues(metric).Add(value)
}

// RecordGauge sets the current value of a gauge metric.
func (pm *PrometheusMetrics) RecordGauge(metric string, value float64, _ map[string]string) {
	pm.stateGauges.WithLabelValues(metric).Set(value)
}

// RecordHistogram records a value in a histogram.
func (pm *PrometheusMetrics) RecordHistogram(metric string, value float64, _ map[string]string) {
	pm.observations.WithLabelValues(metric).Observe(value)
}
