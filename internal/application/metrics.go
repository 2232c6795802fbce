package application

import (
	"time"

	"github.com/supplyai/matchengine/internal/ports"
)

var _ ports.MetricsCollector = noopMetrics{}

// noopMetrics discards all measurements. It is used when no collector is
// injected, keeping the engine's hot path free of nil checks.
type noopMetrics struct{}

func (noopMetrics) RecordLatency(string, time.Duration, map[string]string) {}
func (noopMetrics) RecordCounter(string, float64, map[string]string)       {}
func (noopMetrics) RecordGauge(string, float64, map[string]string)         {}
func (noopMetrics) RecordHistogram(string, float64, map[string]string)     {}
