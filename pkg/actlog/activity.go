package actlog

import (
	"fmt"
	"sync/atomic"
)

// ActivityID identifies a live activity. IDs are opaque and never
// reused within a process; the zero id is never allocated.
type ActivityID uint64

var lastActivityID atomic.Uint64

// NextID allocates a fresh activity id.
func NextID() ActivityID {
	return ActivityID(lastActivityID.Add(1))
}

// ActivityType categorizes an activity for per-type aggregation.
type ActivityType int

const (
	// ActivityUnknown marks activities that are tracked (label, log
	// lines) but never aggregated into a status metric.
	ActivityUnknown ActivityType = iota
	// ActivityBuild counts package builds.
	ActivityBuild
	// ActivityCopyPaths counts store paths copied between stores.
	ActivityCopyPaths
	// ActivityCopyPath tracks the byte volume of a single path copy.
	ActivityCopyPath
	// ActivityDownload tracks downloaded byte volume.
	ActivityDownload
	// ActivityOptimiseStore counts paths visited while deduplicating
	// the store.
	ActivityOptimiseStore
	// ActivityVerifyPaths counts store paths checked for integrity.
	ActivityVerifyPaths
)

// String returns a short diagnostic name for the type.
func (t ActivityType) String() string {
	switch t {
	case ActivityUnknown:
		return "unknown"
	case ActivityBuild:
		return "build"
	case ActivityCopyPaths:
		return "copy-paths"
	case ActivityCopyPath:
		return "copy-path"
	case ActivityDownload:
		return "download"
	case ActivityOptimiseStore:
		return "optimise-store"
	case ActivityVerifyPaths:
		return "verify-paths"
	default:
		return fmt.Sprintf("activity(%d)", int(t))
	}
}

// Activity is a producer-side handle for one unit of work. Creating it
// allocates an id and emits the start event; the methods route
// progress, results and the stop event to the logger the activity was
// started against, even if the process logger is swapped mid-flight.
type Activity struct {
	id     ActivityID
	logger Logger
}

// StartActivity starts an activity against the current process logger.
func StartActivity(typ ActivityType, text string) *Activity {
	return StartActivityOn(Current(), typ, text)
}

// StartActivityOn starts an activity against an explicit logger.
func StartActivityOn(l Logger, typ ActivityType, text string) *Activity {
	a := &Activity{id: NextID(), logger: l}
	l.StartActivity(a.id, typ, text)
	return a
}

// ID returns the activity's id.
func (a *Activity) ID() ActivityID { return a.id }

// Progress replaces the activity's counters.
func (a *Activity) Progress(done, expected, running, failed uint64) {
	a.logger.Progress(a.id, done, expected, running, failed)
}

// SetExpected declares how much work of the given type is expected
// under this activity.
func (a *Activity) SetExpected(typ ActivityType, expected uint64) {
	a.logger.SetExpected(a.id, typ, expected)
}

// Result reports a point event.
func (a *Activity) Result(rt ResultType, fields ...Field) {
	a.logger.Result(a.id, rt, fields)
}

// Stop retires the activity. Stopping twice is harmless.
func (a *Activity) Stop() {
	a.logger.StopActivity(a.id)
}
