package revel

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEmitsSuccessRecordOnCleanExit(t *testing.T) {
	ctx := context.Background()
	logger, handler := newTestLogger(t, "svc",
		WithSuccessMessage("refresh ok"),
		WithFailMessage("refresh failed"),
	)

	err := logger.Run(ctx, func(_ context.Context) error { return nil })
	require.NoError(t, err)

	entries := handler.All()
	require.Len(t, entries, 1, "exactly one record per scope")
	assert.Equal(t, log.LevelInfo, entries[0].Level)
	assert.Equal(t, "refresh ok", entries[0].Msg)

	_, hasExc := entries[0].Fields["exc"]
	assert.False(t, hasExc)
}

func TestRunPropagatesFailureWithErrorRecord(t *testing.T) {
	ctx := context.Background()
	logger, handler := newTestLogger(t, "svc")

	boom := errors.New("boom")
	err := logger.Run(ctx, func(_ context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)

	entries := handler.All()
	require.Len(t, entries, 1)
	assert.Equal(t, log.LevelError, entries[0].Level)
	assert.Equal(t, "failed", entries[0].Msg)

	exc, ok := entries[0].Fields["exc"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("%T", boom), exc["error_type"])
	assert.Equal(t, "boom", exc["error_value"])
}

func TestRunConsumesFailureWhenHandlingErrors(t *testing.T) {
	ctx := context.Background()
	logger, handler := newTestLogger(t, "svc", WithHandleError(true))

	err := logger.Run(ctx, func(_ context.Context) error { return errors.New("boom") })

	assert.NoError(t, err, "handled failures must not escape the scope")

	entries := handler.All()
	require.Len(t, entries, 1)
	assert.Equal(t, log.LevelWarn, entries[0].Level)
}

func TestRunWithMessageOverridesForOneBlock(t *testing.T) {
	ctx := context.Background()
	logger, handler := newTestLogger(t, "svc",
		WithSuccessMessage("default ok"),
		WithFailMessage("default failed"),
	)

	err := logger.RunWithMessage(ctx, "custom ok", "custom failed",
		func(_ context.Context) error { return nil })
	require.NoError(t, err)

	err = logger.Run(ctx, func(_ context.Context) error { return nil })
	require.NoError(t, err)

	entries := handler.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "custom ok", entries[0].Msg)
	assert.Equal(t, "default ok", entries[1].Msg)
}

func TestRunWithMessageEmptyFailFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	logger, handler := newTestLogger(t, "svc", WithFailMessage("default failed"))

	_ = logger.RunWithMessage(ctx, "ok", "", func(_ context.Context) error {
		return errors.New("boom")
	})

	entry, ok := handler.Last()
	require.True(t, ok)
	assert.Equal(t, "default failed", entry.Msg)
}

func TestRunRecordsAndRethrowsPanic(t *testing.T) {
	ctx := context.Background()
	logger, handler := newTestLogger(t, "svc")

	assert.Panics(t, func() {
		_ = logger.Run(ctx, func(_ context.Context) error {
			panic("unexpected state")
		})
	})

	entries := handler.All()
	require.Len(t, entries, 1)
	assert.Equal(t, log.LevelError, entries[0].Level)

	exc, ok := entries[0].Fields["exc"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "panic", exc["error_type"])
	assert.Equal(t, "unexpected state", exc["error_value"])
}

func TestRunConsumesPanicWhenHandlingErrors(t *testing.T) {
	ctx := context.Background()
	logger, handler := newTestLogger(t, "svc", WithHandleError(true))

	var err error

	assert.NotPanics(t, func() {
		err = logger.Run(ctx, func(_ context.Context) error {
			panic("unexpected state")
		})
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected state")

	entries := handler.All()
	require.Len(t, entries, 1)
	assert.Equal(t, log.LevelWarn, entries[0].Level)
}

func TestRunScopeSeesScopedContext(t *testing.T) {
	ctx := context.Background()
	logger, handler := newTestLogger(t, "svc")

	scoped := logger.WithContextParams(ctx, "context", log.String("operation", "refresh"))

	err := logger.Run(scoped, func(_ context.Context) error { return nil })
	require.NoError(t, err)

	entry, ok := handler.Last()
	require.True(t, ok)
	assert.Equal(t, map[string]any{"operation": "refresh"}, entry.namespace("svc")["context"])
}
