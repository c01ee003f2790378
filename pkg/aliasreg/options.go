package aliasreg

import (
	"log/slog"

	"github.com/randalmurphal/aliasreg/pkg/aliasreg/observability"
	"github.com/randalmurphal/aliasreg/pkg/aliasreg/prompt"
)

// settings holds construction-time configuration for an alias layer.
type settings struct {
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	maxHints int
}

// defaultSettings returns the default configuration: no logging, no-op
// metrics, prompt.DefaultMaxHints hints.
func defaultSettings() settings {
	return settings{
		metrics:  observability.NoopMetrics{},
		maxHints: prompt.DefaultMaxHints,
	}
}

// Option configures an alias layer at construction time.
type Option func(*settings)

// WithLogger enables structured logging of registrations and hint queries.
// The logger is enriched with the factory name and a per-registry instance
// ID. Default: logging disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics recorder. Default: observability.NoopMetrics.
//
// Example:
//
//	aliases := aliasreg.New(src, aliasreg.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(s *settings) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithMaxHints sets the maximum number of names returned by Hints.
// Default: prompt.DefaultMaxHints. Values <= 0 are ignored.
func WithMaxHints(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxHints = n
		}
	}
}
