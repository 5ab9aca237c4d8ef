package revel

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
)

// RestoreFunc restores state captured by a scoped acquisition. It is safe to
// call more than once; only the first call takes effect. Call it from defer
// so restoration runs on every exit path, including panics. When combined
// with a message scope, plain defer ordering applies: the inner scope
// unwinds before the outer one.
type RestoreFunc func()

// DisableOuterLogs redirects os.Stdout and os.Stderr to the null device until
// the returned RestoreFunc runs. Structured records keep flowing through the
// logger's handler; only raw, unstructured process output is suppressed.
//
// The gate swaps process-wide streams. Two gates active concurrently on
// different goroutines race on the same underlying streams; correctness is
// guaranteed only for sequential or properly nested use within a single
// flow of control.
func (l *Logger) DisableOuterLogs() RestoreFunc {
	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		// Never fail the caller's block over a gate that cannot engage.
		l.Warn(context.Background(), "stream gate could not open null device", log.Err(err))

		return func() {}
	}

	return l.gateStreams(null, null.Close)
}

// RedirectOuterLogs redirects os.Stdout and os.Stderr into w until the
// returned RestoreFunc runs. The same process-wide caveats as
// DisableOuterLogs apply.
func (l *Logger) RedirectOuterLogs(w io.Writer) RestoreFunc {
	reader, writer, err := os.Pipe()
	if err != nil {
		l.Warn(context.Background(), "stream gate could not create pipe", log.Err(err))

		return func() {}
	}

	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = io.Copy(w, reader)
	}()

	return l.gateStreams(writer, func() error {
		writeErr := writer.Close()

		// The copier drains the pipe and exits once the write end closes;
		// waiting here guarantees w has received everything.
		<-done

		return errors.Join(writeErr, reader.Close())
	})
}

// gateStreams swaps both standard streams for target and returns the restore
// closure. Restoration failures are reported as a best-effort warning through
// the handler and never propagate past the scope boundary.
func (l *Logger) gateStreams(target *os.File, teardown func() error) RestoreFunc {
	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = target, target

	var once sync.Once

	return func() {
		once.Do(func() {
			os.Stdout, os.Stderr = stdout, stderr

			if err := teardown(); err != nil {
				l.Warn(context.Background(), "stream gate restore incomplete", log.Err(err))
			}
		})
	}
}
