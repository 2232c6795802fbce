package ports

import (
	"context"
	"time"

	"github.com/supplyai/matchengine/internal/domain"
)

// LLMClient defines the interface for interacting with Large Language
// Model providers. Implementations handle provider-specific details like
// authentication, request formatting, and response parsing.
type LLMClient interface {
	// Complete sends a completion request to the LLM provider and returns
	// the generated text. The options map allows provider-specific tuning
	// (e.g. "temperature" float64, "max_tokens" int) without changing the
	// interface.
	Complete(ctx context.Context, prompt string, options map[string]any) (string, error)

	// GetModel returns the model identifier being used by this client,
	// for logging and debugging.
	GetModel() string
}

// SpecExtractor turns free-text order/RFQ prose into structured request
// records. The extraction grammar itself lives on the provider side; the
// engine only consumes the structured result.
type SpecExtractor interface {
	// ExtractRequest extracts a single structured request from prose.
	ExtractRequest(ctx context.Context, text string) (domain.Record, error)

	// ExtractOrders extracts every order found in a multi-order text.
	ExtractOrders(ctx context.Context, text string) ([]domain.Record, error)
}

// SupplierStore persists registered supplier offers and serves them back
// as candidate records for matching.
type SupplierStore interface {
	// Init creates the backing schema if it does not already exist.
	Init(ctx context.Context) error

	// Add registers a new supplier and returns its assigned ID.
	Add(ctx context.Context, s domain.Supplier) (int64, error)

	// FindByMaterial returns all suppliers registered for the given
	// material, newest first.
	FindByMaterial(ctx context.Context, material string) ([]domain.Supplier, error)

	// Close releases the underlying storage handle.
	Close() error
}

// Renderer formats a pipeline analysis for human consumption.
type Renderer interface {
	// Render produces the formatted report for one analysis.
	Render(a domain.OrderAnalysis) string
}

// MetricsCollector defines the interface for collecting operational
// metrics. Implementations integrate with observability platforms such as
// Prometheus, or discard measurements entirely in tests.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets the current value of a gauge metric.
	RecordGauge(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram, useful for
	// distributions like candidate counts and scores.
	RecordHistogram(metric string, value float64, labels map[string]string)
}
