// Package actlogtest provides a recording test double for the actlog
// package. Recorder captures every Logger call so tests can assert on
// the event stream a producer emits.
package actlogtest

import (
	"sync"

	"github.com/schmitthub/pawgress/pkg/actlog"
)

// EventKind names the Logger method that produced an Event.
type EventKind string

const (
	KindLog      EventKind = "log"
	KindStart    EventKind = "start"
	KindStop     EventKind = "stop"
	KindProgress EventKind = "progress"
	KindExpected EventKind = "expected"
	KindResult   EventKind = "result"
)

// Event is one recorded Logger call. Only the fields relevant to its
// Kind are set.
type Event struct {
	Kind EventKind

	ID   actlog.ActivityID
	Type actlog.ActivityType
	Text string

	Verbosity actlog.Verbosity
	Message   string

	Done, Expected, Running, Failed uint64

	Result actlog.ResultType
	Fields []actlog.Field
}

// Recorder is an actlog.Logger that records every call.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *Recorder) Log(v actlog.Verbosity, msg string) {
	r.record(Event{Kind: KindLog, Verbosity: v, Message: msg})
}

func (r *Recorder) StartActivity(id actlog.ActivityID, typ actlog.ActivityType, text string) {
	r.record(Event{Kind: KindStart, ID: id, Type: typ, Text: text})
}

func (r *Recorder) StopActivity(id actlog.ActivityID) {
	r.record(Event{Kind: KindStop, ID: id})
}

func (r *Recorder) Progress(id actlog.ActivityID, done, expected, running, failed uint64) {
	r.record(Event{Kind: KindProgress, ID: id, Done: done, Expected: expected, Running: running, Failed: failed})
}

func (r *Recorder) SetExpected(id actlog.ActivityID, typ actlog.ActivityType, expected uint64) {
	r.record(Event{Kind: KindExpected, ID: id, Type: typ, Expected: expected})
}

func (r *Recorder) Result(id actlog.ActivityID, rt actlog.ResultType, fields []actlog.Field) {
	r.record(Event{Kind: KindResult, ID: id, Result: rt, Fields: fields})
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Lines returns the recorded plain log messages in order.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lines []string
	for _, ev := range r.events {
		if ev.Kind == KindLog {
			lines = append(lines, ev.Message)
		}
	}
	return lines
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
