package actlog

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// PlainLogger prints activity output as plain text lines: log
// messages, activity start descriptions and build log output. It is
// the default sink, suitable for pipes, CI logs and dumb terminals.
//
// Events with no plain-text rendering (lifecycle, counters) are
// mirrored to a diagnostics logger instead, a zerolog.Nop unless one
// is attached.
type PlainLogger struct {
	mu   sync.Mutex
	out  io.Writer
	diag zerolog.Logger
}

// NewPlainLogger returns a PlainLogger writing to out.
func NewPlainLogger(out io.Writer) *PlainLogger {
	return &PlainLogger{out: out, diag: zerolog.Nop()}
}

// WithDiagnostics mirrors lifecycle and counter events to zl at
// debug/trace level and returns the logger.
func (l *PlainLogger) WithDiagnostics(zl zerolog.Logger) *PlainLogger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.diag = zl
	return l
}

// Log prints the message on its own line.
func (l *PlainLogger) Log(_ Verbosity, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, msg)
}

// StartActivity prints the activity's description when it has one.
func (l *PlainLogger) StartActivity(id ActivityID, typ ActivityType, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if text != "" {
		fmt.Fprintln(l.out, text)
	}
	l.diag.Debug().
		Uint64("activity", uint64(id)).
		Stringer("type", typ).
		Str("text", text).
		Msg("activity started")
}

func (l *PlainLogger) StopActivity(id ActivityID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.diag.Debug().Uint64("activity", uint64(id)).Msg("activity stopped")
}

func (l *PlainLogger) Progress(id ActivityID, done, expected, running, failed uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.diag.Trace().
		Uint64("activity", uint64(id)).
		Uint64("done", done).
		Uint64("expected", expected).
		Uint64("running", running).
		Uint64("failed", failed).
		Msg("progress")
}

func (l *PlainLogger) SetExpected(id ActivityID, typ ActivityType, expected uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.diag.Trace().
		Uint64("activity", uint64(id)).
		Stringer("type", typ).
		Uint64("expected", expected).
		Msg("expectation declared")
}

// Result prints build log lines; verification problems are mirrored at
// warn level, everything else at trace.
func (l *PlainLogger) Result(id ActivityID, rt ResultType, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch rt {
	case ResultBuildLogLine:
		if line := strings.TrimSpace(fields[0].Str()); line != "" {
			fmt.Fprintln(l.out, line)
		}
	case ResultFileLinked:
		l.diag.Trace().
			Uint64("activity", uint64(id)).
			Uint64("bytes", fields[0].Uint()).
			Msg("file linked")
	case ResultUntrustedPath:
		l.diag.Warn().Uint64("activity", uint64(id)).Msg("untrusted path")
	case ResultCorruptedPath:
		l.diag.Warn().Uint64("activity", uint64(id)).Msg("corrupted path")
	}
}
