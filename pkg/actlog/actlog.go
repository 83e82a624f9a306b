// Package actlog is an activity logging framework for long-running
// store and build tooling. Producers describe their work as activities:
// typed units with progress counters, expectation declarations and
// point results. A pluggable Logger sink decides how that work is
// surfaced. The package ships PlainLogger for non-interactive output;
// pkg/progress provides the interactive status line.
package actlog

import (
	"fmt"
	"os"
	"sync"
)

// Verbosity classifies plain log messages. Lower values are more severe.
type Verbosity int

const (
	VerbosityError Verbosity = iota
	VerbosityWarn
	VerbosityInfo
	VerbosityDebug
	VerbosityTrace
)

// String returns the lowercase name of the level.
func (v Verbosity) String() string {
	switch v {
	case VerbosityError:
		return "error"
	case VerbosityWarn:
		return "warn"
	case VerbosityInfo:
		return "info"
	case VerbosityDebug:
		return "debug"
	case VerbosityTrace:
		return "trace"
	default:
		return fmt.Sprintf("verbosity(%d)", int(v))
	}
}

// Logger is the sink for activity events and plain log messages.
//
// Lifecycle and progress calls carry the id of the activity they refer
// to. Except for StopActivity, which tolerates unknown ids, passing an
// id that was never started (or was already stopped) is a caller bug
// and implementations are free to panic.
type Logger interface {
	// Log emits a free-text message.
	Log(v Verbosity, msg string)

	// StartActivity registers a new activity. Starting an id twice is
	// a caller bug.
	StartActivity(id ActivityID, typ ActivityType, text string)

	// StopActivity retires an activity. Stopping an unknown or already
	// stopped id is a no-op.
	StopActivity(id ActivityID)

	// Progress replaces the activity's counters.
	Progress(id ActivityID, done, expected, running, failed uint64)

	// SetExpected declares the total amount of work of the given type
	// expected under this activity. A later call replaces the earlier
	// declaration.
	SetExpected(id ActivityID, typ ActivityType, expected uint64)

	// Result reports a point event produced by the activity.
	Result(id ActivityID, rt ResultType, fields []Field)
}

var (
	currentMu sync.RWMutex
	current   Logger = NewPlainLogger(os.Stderr)

	verbosityMu sync.RWMutex
	verbosity   = VerbosityInfo
)

// Current returns the process-wide activity logger.
func Current() Logger {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent installs l as the process-wide activity logger and
// returns the previous one. Callers installing a scoped logger must
// restore the returned value when done.
func SetCurrent(l Logger) Logger {
	currentMu.Lock()
	defer currentMu.Unlock()
	prev := current
	current = l
	return prev
}

// SetVerbosity sets the threshold used by the package-level emit
// helpers. Messages above the threshold are dropped before they reach
// the sink.
func SetVerbosity(v Verbosity) {
	verbosityMu.Lock()
	defer verbosityMu.Unlock()
	verbosity = v
}

// GetVerbosity returns the current threshold.
func GetVerbosity() Verbosity {
	verbosityMu.RLock()
	defer verbosityMu.RUnlock()
	return verbosity
}

// Logf formats and emits a plain log message at verbosity v through
// the current logger.
func Logf(v Verbosity, format string, a ...any) {
	if v > GetVerbosity() {
		return
	}
	Current().Log(v, fmt.Sprintf(format, a...))
}

// Errorf emits at VerbosityError.
func Errorf(format string, a ...any) { Logf(VerbosityError, format, a...) }

// Warnf emits at VerbosityWarn.
func Warnf(format string, a ...any) { Logf(VerbosityWarn, format, a...) }

// Infof emits at VerbosityInfo.
func Infof(format string, a ...any) { Logf(VerbosityInfo, format, a...) }

// Debugf emits at VerbosityDebug.
func Debugf(format string, a ...any) { Logf(VerbosityDebug, format, a...) }
