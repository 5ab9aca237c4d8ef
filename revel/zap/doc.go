// Package zap provides the production log.Handler implementation.
//
// It bridges the revel/log sink abstraction to zap while preserving
// structured fields, runtime level control, and OpenTelemetry correlation.
package zap
