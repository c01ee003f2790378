// Package observability provides structured logging and metrics for
// alias-aware registries.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds registry context to a logger.
// Returns a new logger with factory and registry_id fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "FunctionFactory", id)
//	enriched.Info("ready") // includes factory, registry_id
func EnrichLogger(logger *slog.Logger, factory, registryID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("factory", factory),
		slog.String("registry_id", registryID),
	)
}

// LogCreatorRegistered logs a canonical name registration.
func LogCreatorRegistered(logger *slog.Logger, name string, caseInsensitive bool) {
	if logger == nil {
		return
	}
	logger.Debug("creator registered",
		slog.String("name", name),
		slog.Bool("case_insensitive", caseInsensitive),
	)
}

// LogAliasRegistered logs a successful alias registration.
func LogAliasRegistered(logger *slog.Logger, alias, real string, caseInsensitive bool) {
	if logger == nil {
		return
	}
	logger.Debug("alias registered",
		slog.String("alias", alias),
		slog.String("real_name", real),
		slog.Bool("case_insensitive", caseInsensitive),
	)
}

// LogAliasRejected logs a failed alias registration.
func LogAliasRejected(logger *slog.Logger, alias, real string, err error) {
	if logger == nil {
		return
	}
	logger.Error("alias rejected",
		slog.String("alias", alias),
		slog.String("real_name", real),
		slog.String("error", err.Error()),
	)
}

// LogHintQuery logs a hint computation for an unrecognized name.
func LogHintQuery(logger *slog.Logger, query string, hints []string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("hint query",
		slog.String("query", query),
		slog.Any("hints", hints),
		slog.Float64("duration_ms", durationMs),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
