// Package log defines the handler (sink) interface and typed logging fields.
//
// Adapters (such as the zap package) implement Handler so the revel core can
// keep record composition consistent across backends.
package log
