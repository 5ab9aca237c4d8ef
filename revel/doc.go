// Package revel provides the structured, context-carrying logger core.
//
// A Logger combines persistent per-logger context, temporarily scoped
// sub-contexts, derived bindings, and per-call fields into one record per
// log call, nested under the logger's name, and hands it to a log.Handler
// sink exactly once.
//
// Typical usage:
//
//	handler, _, _ := zap.New(zap.Config{Environment: zap.EnvironmentProduction, OTelLibraryName: "payments"})
//	logger, _ := revel.New("payments", handler, revel.WithFields(log.String("service", "payments")))
//	logger.Info(ctx, "payment completed", log.String("order_id", "ABC-123"))
//
// This package is intentionally dependency-light; the production sink lives
// in the zap subpackage and call-wrapping helpers in loggable.
package revel
