package telemetry

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType classifies a player interaction.
type EventType string

const (
	EventManualPause        EventType = "manual_pause"
	EventManualPlay         EventType = "manual_play"
	EventSeek               EventType = "seek"
	EventRewind             EventType = "rewind"
	EventForward            EventType = "forward"
	EventSpeedChange        EventType = "speed_change"
	EventCheckpointSkip     EventType = "checkpoint_skip"
	EventCheckpointEngage   EventType = "checkpoint_engage"
	EventCheckpointComplete EventType = "checkpoint_complete"
)

// Event is one recorded interaction. Events are immutable once appended.
type Event struct {
	ID        string
	Timestamp time.Time // wall clock
	VideoTime float64   // playhead position in seconds
	Type      EventType
	Details   string
	Metadata  map[string]string
}

// Sink receives every appended event, typically for async persistence.
// Implementations must not block.
type Sink func(Event)

// Log is an append-only interaction log. Appends never fail and never drop
// events; ordering is insertion order. Safe for use from async callbacks.
type Log struct {
	mu     sync.Mutex
	events []Event
	sinks  []Sink
	now    func() time.Time
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// SetClock overrides the wall clock, for tests.
func (l *Log) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// AddSink registers a callback invoked for every subsequent append.
func (l *Log) AddSink(s Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, s)
}

// Append records an event with a fresh id and the current wall-clock time,
// and returns the stored event.
func (l *Log) Append(typ EventType, videoTime float64, details string, metadata map[string]string) Event {
	l.mu.Lock()
	ev := Event{
		ID:        uuid.New().String(),
		Timestamp: l.now(),
		VideoTime: videoTime,
		Type:      typ,
		Details:   details,
		Metadata:  metadata,
	}
	l.events = append(l.events, ev)
	sinks := l.sinks
	l.mu.Unlock()

	for _, s := range sinks {
		s(ev)
	}
	return ev
}

// All returns a copy of every event in insertion order.
func (l *Log) All() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// ByType returns all events of the given type, in insertion order.
func (l *Log) ByType(typ EventType) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Event
	for _, ev := range l.events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

// Counts returns the number of events per type.
func (l *Log) Counts() map[EventType]int {
	l.mu.Lock()
	defer l.mu.Unlock()
	counts := make(map[EventType]int)
	for _, ev := range l.events {
		counts[ev.Type]++
	}
	return counts
}

// Window returns events whose wall-clock age relative to now is at most d,
// in insertion order.
func (l *Log) Window(now time.Time, d time.Duration) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Event
	for _, ev := range l.events {
		if now.Sub(ev.Timestamp) <= d {
			out = append(out, ev)
		}
	}
	return out
}
