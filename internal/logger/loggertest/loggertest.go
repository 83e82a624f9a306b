// Package loggertest provides test doubles for the logger package.
package loggertest

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/schmitthub/pawgress/internal/logger"
)

// Captured accumulates everything written through the global logger
// while a Capture is active. Safe for concurrent writers.
type Captured struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Capture redirects the global logger into a buffer for the duration
// of the test. All levels are recorded. The previous logger is put
// back on cleanup.
func Capture(t *testing.T) *Captured {
	t.Helper()
	c := &Captured{}
	prev := logger.Log
	logger.Log = zerolog.New(c).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Logger()
	t.Cleanup(func() { logger.Log = prev })
	return c
}

// Write implements io.Writer for the zerolog sink.
func (c *Captured) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// Output returns captured log output as a string.
func (c *Captured) Output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Contains reports whether the captured output contains s.
func (c *Captured) Contains(s string) bool {
	return strings.Contains(c.Output(), s)
}

// Reset clears captured output.
func (c *Captured) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
}
