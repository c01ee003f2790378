package observability

import (
	"context"
	"time"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordAliasRegistration does nothing.
func (NoopMetrics) RecordAliasRegistration(_ context.Context, _ string, _ bool, _ error) {}

// RecordLookup does nothing.
func (NoopMetrics) RecordLookup(_ context.Context, _ string, _ bool) {}

// RecordHintQuery does nothing.
func (NoopMetrics) RecordHintQuery(_ context.Context, _ string, _ int, _ time.Duration) {}
