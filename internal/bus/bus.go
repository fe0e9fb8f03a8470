package bus

import "sync"

// Signal names the wire events of a player session. External integrations
// (tutor tool calls, the review tab) key off these, so the names are part of
// the public contract.
type Signal string

const (
	SignalAnnounceUpcoming    Signal = "announce-upcoming"
	SignalNudgeShown          Signal = "nudge-shown"
	SignalNudgeDismissed      Signal = "nudge-dismissed"
	SignalCheckpointEngaged   Signal = "checkpoint-engaged"
	SignalCheckpointAnswered  Signal = "checkpoint-answered"
	SignalCheckpointCompleted Signal = "checkpoint-completed"
	SignalCheckpointReengaged Signal = "checkpoint-reengaged"
	SignalSeek                Signal = "seek"
	SignalRewind              Signal = "rewind"
	SignalForward             Signal = "forward"
	SignalSpeedChange         Signal = "speed-change"
)

// Event is a published signal with an optional payload. Payload keys are
// signal-specific ("from"/"to" for seeks, "key" for checkpoint signals).
type Event struct {
	Signal  Signal
	Payload map[string]any
}

// Handler receives published events. Handlers run synchronously on the
// publisher's goroutine; keep them short.
type Handler func(Event)

// Bus is a minimal in-process pub/sub hub replacing the window-level custom
// events of the original design.
type Bus struct {
	mu       sync.Mutex
	handlers map[Signal][]Handler
	all      []Handler
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[Signal][]Handler)}
}

// Subscribe registers a handler for one signal.
func (b *Bus) Subscribe(s Signal, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[s] = append(b.handlers[s], h)
}

// SubscribeAll registers a handler for every signal.
func (b *Bus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = append(b.all, h)
}

// Publish delivers the event to all matching handlers in registration order.
func (b *Bus) Publish(s Signal, payload map[string]any) {
	b.mu.Lock()
	handlers := append([]Handler(nil), b.handlers[s]...)
	handlers = append(handlers, b.all...)
	b.mu.Unlock()

	ev := Event{Signal: s, Payload: payload}
	for _, h := range handlers {
		h(ev)
	}
}
