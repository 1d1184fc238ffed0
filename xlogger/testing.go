package xlogger

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"testing"
)

type testWriter struct {
	mu  sync.Mutex
	tb  testing.TB
	buf bytes.Buffer
}

// TestWriter returns a writer that forwards complete lines to tb.Log, so
// log output shows up next to the test that produced it.
func TestWriter(tb testing.TB) io.Writer {
	return &testWriter{tb: tb}
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadBytes('\n')
		if err != nil {
			// incomplete line, keep it for the next write
			w.buf.Write(line)
			return len(p), nil
		}
		w.tb.Helper()
		w.tb.Log(string(bytes.TrimSuffix(line, []byte{'\n'})))
	}
}

// NewTest returns a debug-level text logger bound to tb.
func NewTest(tb testing.TB) *slog.Logger {
	return New(Config{Level: "debug", LogType: "text", Output: TestWriter(tb)})
}
