// Package loggable provides higher-order wrappers that add entry and failure
// logging around arbitrary callables.
//
// Argument names are supplied by the caller as an Args mapping, so the
// wrappers stay reflection-free.
package loggable
