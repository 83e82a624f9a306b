// Package progress renders live activity as a single status line that
// is repainted in place at the bottom of a terminal stream.
//
// Bar implements actlog.Logger: activity starts, stops, counter
// updates and results each mutate one shared state and repaint before
// returning, so the line on screen never lags the event that changed
// it. There is no background goroutine and no frame coalescing.
package progress

import (
	"container/list"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/schmitthub/pawgress/pkg/actlog"
)

// actInfo is the tracked state of one live activity.
type actInfo struct {
	text   string // activity description, shown as the trailing label
	detail string // most recent build log line
	typ    actlog.ActivityType

	done, expected, running, failed uint64

	// expectedByType records SetExpected declarations made through
	// this activity, keyed by the type they apply to, so they can be
	// backed out when the activity stops.
	expectedByType map[actlog.ActivityType]uint64
}

// typeStats aggregates one activity type: counters folded in from
// stopped activities plus the set of live contributors.
type typeStats struct {
	live map[actlog.ActivityID]*list.Element

	// done and failed are the baseline carried over from stopped
	// activities. expected holds the sum of live SetExpected
	// declarations for this type, not a baseline.
	done, expected, failed uint64
}

// Bar is an actlog.Logger that maintains a one-line status rendering
// of all live activities.
type Bar struct {
	out io.Writer

	mu       sync.Mutex
	width    int
	color    bool
	closed   bool
	writeErr bool

	activities *list.List // of *actInfo, oldest first
	byID       map[actlog.ActivityID]*list.Element
	byType     map[actlog.ActivityType]*typeStats

	filesLinked    uint64
	bytesLinked    uint64
	corruptedPaths uint64
	untrustedPaths uint64
}

// Option configures a Bar.
type Option func(*Bar)

// WithWidth fixes the rendering width in columns. Zero disables
// truncation.
func WithWidth(cols int) Option {
	return func(b *Bar) { b.width = cols }
}

// WithColor forces ANSI color on or off.
func WithColor(enabled bool) Option {
	return func(b *Bar) { b.color = enabled }
}

// New returns a Bar writing to out. Unless overridden by options the
// bar colors its output and never truncates.
func New(out io.Writer, opts ...Option) *Bar {
	b := &Bar{
		out:        out,
		color:      true,
		activities: list.New(),
		byID:       make(map[actlog.ActivityID]*list.Element),
		byType:     make(map[actlog.ActivityType]*typeStats),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Log clears the status line, prints the message on its own line and
// repaints the status below it.
func (b *Bar) Log(_ actlog.Verbosity, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.write("\r" + eraseToEOL + msg + "\n")
	b.redraw()
}

// StartActivity registers a new activity at the tail of the display
// order. The id must not already be live.
func (b *Bar) StartActivity(id actlog.ActivityID, typ actlog.ActivityType, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.byID[id]; ok {
		panic(fmt.Sprintf("progress: activity %d started twice", id))
	}
	el := b.activities.PushBack(&actInfo{
		text:           text,
		typ:            typ,
		expectedByType: make(map[actlog.ActivityType]uint64),
	})
	b.byID[id] = el
	b.typeState(typ).live[id] = el
	b.redraw()
}

// StopActivity folds the activity's counters into its type's baseline,
// backs out its expectation declarations and forgets it. An unknown id
// still triggers a repaint but is otherwise ignored.
func (b *Bar) StopActivity(id actlog.ActivityID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if el, ok := b.byID[id]; ok {
		info := el.Value.(*actInfo)
		ts := b.typeState(info.typ)
		ts.done += info.done
		ts.failed += info.failed
		for typ, expected := range info.expectedByType {
			b.typeState(typ).expected -= expected
		}
		delete(ts.live, id)
		b.activities.Remove(el)
		delete(b.byID, id)
	}
	b.redraw()
}

// Progress replaces the activity's counters.
func (b *Bar) Progress(id actlog.ActivityID, done, expected, running, failed uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	info := b.mustGet(id).Value.(*actInfo)
	info.done = done
	info.expected = expected
	info.running = running
	info.failed = failed
	b.redraw()
}

// SetExpected replaces the expected total this activity declares for
// typ. The per-type aggregate moves by the difference, so repeating a
// declaration changes nothing.
func (b *Bar) SetExpected(id actlog.ActivityID, typ actlog.ActivityType, expected uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	info := b.mustGet(id).Value.(*actInfo)
	ts := b.typeState(typ)
	ts.expected -= info.expectedByType[typ]
	ts.expected += expected
	info.expectedByType[typ] = expected
	b.redraw()
}

// Result folds point events into the display. Linked files and
// verification problems bump global counters; a build log line becomes
// the activity's detail text and pulls it to the tail of the label
// scan order. Unhandled kinds are dropped without a repaint.
func (b *Bar) Result(id actlog.ActivityID, rt actlog.ResultType, fields []actlog.Field) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch rt {
	case actlog.ResultFileLinked:
		b.filesLinked++
		b.bytesLinked += fields[0].Uint()
		b.redraw()

	case actlog.ResultBuildLogLine:
		line := strings.TrimSpace(fields[0].Str())
		if line == "" {
			return
		}
		el := b.mustGet(id)
		el.Value.(*actInfo).detail = line
		b.activities.MoveToBack(el)
		b.redraw()

	case actlog.ResultUntrustedPath:
		b.untrustedPaths++
		b.redraw()

	case actlog.ResultCorruptedPath:
		b.corruptedPaths++
		b.redraw()
	}
}

// SetWidth changes the truncation width and repaints at the new size.
// Zero or negative disables truncation.
func (b *Bar) SetWidth(w int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w == b.width {
		return
	}
	b.width = w
	b.redraw()
}

// Close erases the status line and, when there is anything to report,
// leaves the final summary behind on its own line. The bar writes
// nothing after Close; closing twice is a no-op.
func (b *Bar) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	out := "\r" + eraseToEOL
	if status := b.status(); status != "" {
		out += "[" + status + "]\n"
	}
	b.write(out)
	b.closed = true
	return nil
}

func (b *Bar) mustGet(id actlog.ActivityID) *list.Element {
	el, ok := b.byID[id]
	if !ok {
		panic(fmt.Sprintf("progress: unknown activity %d", id))
	}
	return el
}

func (b *Bar) typeState(typ actlog.ActivityType) *typeStats {
	ts, ok := b.byType[typ]
	if !ok {
		ts = &typeStats{live: make(map[actlog.ActivityID]*list.Element)}
		b.byType[typ] = ts
	}
	return ts
}

// redraw repaints the status line in place: carriage return, bracketed
// summary, trailing label, erase to end of line, the whole thing
// truncated to one column less than the terminal width. Raw bytes are
// what is counted, embedded escape sequences included. Callers hold
// the lock.
func (b *Bar) redraw() {
	if b.closed {
		return
	}

	line := "\r"
	status := b.status()
	if status != "" {
		line += "[" + status + "]"
	}
	if label := b.label(); label != "" {
		if status != "" {
			line += " "
		}
		line += label
	}
	line += eraseToEOL

	if b.width > 0 && len(line) > b.width-1 {
		line = line[:b.width-1]
	}
	b.write(line)
}

// label returns the display text of the most recently touched
// labelled activity: its description, its last log line, or both
// joined by ": ".
func (b *Bar) label() string {
	for el := b.activities.Back(); el != nil; el = el.Prev() {
		info := el.Value.(*actInfo)
		if info.text == "" && info.detail == "" {
			continue
		}
		s := info.text
		if info.detail != "" {
			if s != "" {
				s += ": "
			}
			s += info.detail
		}
		return s
	}
	return ""
}

// write sends raw bytes to the output, going quiet after the first
// write failure.
func (b *Bar) write(s string) {
	if b.writeErr {
		return
	}
	if _, err := io.WriteString(b.out, s); err != nil {
		b.writeErr = true
	}
}
