package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordAliasRegistration records an alias registration attempt and its outcome.
	RecordAliasRegistration(ctx context.Context, factory string, caseInsensitive bool, err error)

	// RecordLookup records a creator lookup and whether it resolved.
	RecordLookup(ctx context.Context, factory string, found bool)

	// RecordHintQuery records a hint computation with its result count and duration.
	RecordHintQuery(ctx context.Context, factory string, hints int, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	aliasRegistrations metric.Int64Counter
	aliasErrors        metric.Int64Counter
	lookups            metric.Int64Counter
	hintQueries        metric.Int64Counter
	hintLatency        metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("aliasreg")

	aliasRegistrations, err := meter.Int64Counter("aliasreg.alias.registrations",
		metric.WithDescription("Number of alias registration attempts"),
	)
	if err != nil {
		return nil, err
	}

	aliasErrors, err := meter.Int64Counter("aliasreg.alias.errors",
		metric.WithDescription("Number of rejected alias registrations"),
	)
	if err != nil {
		return nil, err
	}

	lookups, err := meter.Int64Counter("aliasreg.lookups",
		metric.WithDescription("Number of creator lookups"),
	)
	if err != nil {
		return nil, err
	}

	hintQueries, err := meter.Int64Counter("aliasreg.hint.queries",
		metric.WithDescription("Number of hint queries"),
	)
	if err != nil {
		return nil, err
	}

	hintLatency, err := meter.Float64Histogram("aliasreg.hint.latency_ms",
		metric.WithDescription("Hint query latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		aliasRegistrations: aliasRegistrations,
		aliasErrors:        aliasErrors,
		lookups:            lookups,
		hintQueries:        hintQueries,
		hintLatency:        hintLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordAliasRegistration records an alias registration attempt.
func (m *otelMetrics) RecordAliasRegistration(ctx context.Context, factory string, caseInsensitive bool, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("factory", factory),
		attribute.Bool("case_insensitive", caseInsensitive),
	}

	m.aliasRegistrations.Add(ctx, 1, metric.WithAttributes(attrs...))

	if err != nil {
		m.aliasErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("factory", factory)))
	}
}

// RecordLookup records a creator lookup.
func (m *otelMetrics) RecordLookup(ctx context.Context, factory string, found bool) {
	attrs := []attribute.KeyValue{
		attribute.String("factory", factory),
		attribute.Bool("found", found),
	}
	m.lookups.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordHintQuery records a hint computation.
func (m *otelMetrics) RecordHintQuery(ctx context.Context, factory string, hints int, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("factory", factory),
		attribute.Int("hints", hints),
	}
	m.hintQueries.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.hintLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attribute.String("factory", factory)))
}
