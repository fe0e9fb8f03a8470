package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/lecto/internal/llm"
	"github.com/abhisek/lecto/internal/sched"
)

// Mode is the session transport mode. Voice mode carries the conversation
// over the provider's speech channel; from the orchestration core's side it
// only changes the context-sync policy (pull, never push).
type Mode string

const (
	ModeText  Mode = "text"
	ModeVoice Mode = "voice"
)

// ConnState is the session connection state.
type ConnState int

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
	StateReconnecting
)

// reconnect policy: capped exponential backoff, then give up.
const (
	maxReconnectAttempts = 3
	reconnectBaseWait    = time.Second
	// instabilityLimit is how many transport drops voice mode tolerates
	// before falling back to text.
	instabilityLimit = 2
)

// Event is a session notification delivered to the UI loop.
type Event struct {
	Kind  EventKind
	Reply string
	Tools []ToolResult
	Err   error
	Mode  Mode
}

// EventKind tags session events.
type EventKind int

const (
	EventConnected EventKind = iota
	EventDisconnected
	EventReply
	EventError
	EventModeFallback
)

// ToolResult is one executed tool call from a tutor reply.
type ToolResult struct {
	Name   string
	Status string
}

// Session is a live tutor conversation over an LLM provider. All external
// effects are delivered through the events callback so the UI loop stays
// the only mutator of UI state.
type Session struct {
	provider llm.Provider
	registry *Registry
	events   func(Event)

	mu          sync.Mutex
	state       ConnState
	mode        Mode
	history     []llm.Message
	contextNote string
	drops       int
	attempts    int
	baseWait    time.Duration
	backoff     sched.Slot
}

// NewSession creates a disconnected session.
func NewSession(provider llm.Provider, registry *Registry, events func(Event)) *Session {
	return &Session{
		provider: provider,
		registry: registry,
		events:   events,
		mode:     ModeText,
		baseWait: reconnectBaseWait,
	}
}

// State returns the connection state.
func (s *Session) State() ConnState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mode returns the transport mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Connect opens the session in the given mode. Connection errors surface
// inline in the tutor panel, never as a playback interruption.
func (s *Session) Connect(mode Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.provider == nil {
		return fmt.Errorf("no tutor provider configured")
	}
	if s.state == StateConnected || s.state == StateConnecting {
		return nil
	}
	s.state = StateConnected
	s.mode = mode
	s.attempts = 0
	s.emit(Event{Kind: EventConnected, Mode: mode})
	return nil
}

// Disconnect is the user closing the session: terminal, no reconnect.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backoff.Cancel()
	s.state = StateDisconnected
	s.drops = 0
	s.emit(Event{Kind: EventDisconnected})
}

// PushContext replaces the context note attached to subsequent requests.
func (s *Session) PushContext(note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contextNote = note
}

// History returns a copy of the conversation so far.
func (s *Session) History() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.Message(nil), s.history...)
}

// Send submits a student message. The reply (and any tool calls it carries)
// arrives via the events callback.
func (s *Session) Send(ctx context.Context, text string) error {
	s.mu.Lock()
	if s.state != StateConnected {
		s.mu.Unlock()
		return fmt.Errorf("tutor session is not connected")
	}
	s.history = append(s.history, llm.Message{Role: llm.RoleUser, Content: text})
	req := s.buildRequestLocked()
	s.mu.Unlock()

	go func() {
		resp, err := s.provider.Generate(llm.WithPurpose(ctx, "tutor-chat"), req)
		if err != nil {
			s.handleSendError(ctx, err)
			return
		}
		s.handleReply(resp.Content)
	}()
	return nil
}

func (s *Session) buildRequestLocked() llm.Request {
	system := tutorSystemPrompt
	if s.contextNote != "" {
		system += "\n\nCurrent playback context:\n" + s.contextNote
	}
	if names := s.registry.Names(); len(names) > 0 {
		system += "\n\nAvailable tools: " + strings.Join(names, ", ")
	}
	return llm.Request{
		System:      system,
		Messages:    append([]llm.Message(nil), s.history...),
		Schema:      tutorReplySchema,
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

type tutorReply struct {
	Reply     string `json:"reply"`
	ToolCalls []struct {
		Name string         `json:"name"`
		Args map[string]any `json:"args"`
	} `json:"tool_calls"`
}

func (s *Session) handleReply(raw json.RawMessage) {
	var out tutorReply
	if err := json.Unmarshal(raw, &out); err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.emit(Event{Kind: EventError, Err: fmt.Errorf("parse tutor reply: %w", err)})
		return
	}

	var results []ToolResult
	for _, call := range out.ToolCalls {
		status := s.registry.Dispatch(call.Name, call.Args)
		results = append(results, ToolResult{Name: call.Name, Status: status})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, llm.Message{Role: llm.RoleAssistant, Content: out.Reply})
	s.drops = 0
	s.attempts = 0
	s.emit(Event{Kind: EventReply, Reply: out.Reply, Tools: results})
}

// handleSendError classifies transport-looking failures as recoverable and
// schedules a reconnect with capped exponential backoff; anything else is
// reported inline.
func (s *Session) handleSendError(ctx context.Context, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateDisconnected {
		return // user hung up while the request was in flight
	}

	if !llm.IsTransport(err) {
		s.emit(Event{Kind: EventError, Err: err})
		return
	}

	s.drops++
	if s.mode == ModeVoice && s.drops >= instabilityLimit {
		// Repeated instability: fall back to the more reliable text
		// transport.
		s.mode = ModeText
		s.emit(Event{Kind: EventModeFallback, Mode: ModeText})
	}

	if s.attempts >= maxReconnectAttempts {
		s.state = StateDisconnected
		s.emit(Event{Kind: EventError, Err: fmt.Errorf("tutor connection lost: %w", err)})
		s.emit(Event{Kind: EventDisconnected})
		return
	}

	s.state = StateReconnecting
	wait := s.baseWait << s.attempts
	s.attempts++
	s.backoff.After(wait, func() { s.reconnect(ctx) })
}

func (s *Session) reconnect(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateReconnecting {
		s.mu.Unlock()
		return
	}
	s.state = StateConnected
	req := s.buildRequestLocked()
	s.emit(Event{Kind: EventConnected, Mode: s.mode})
	s.mu.Unlock()

	// Retry the conversation tail so the student's last message is not
	// lost.
	go func() {
		resp, err := s.provider.Generate(llm.WithPurpose(ctx, "tutor-chat"), req)
		if err != nil {
			s.handleSendError(ctx, err)
			return
		}
		s.handleReply(resp.Content)
	}()
}

// emit delivers an event. Callers hold mu; the callback itself must not
// call back into the session.
func (s *Session) emit(ev Event) {
	if s.events != nil {
		s.events(ev)
	}
}

const tutorSystemPrompt = `You are a patient tutor embedded in a lecture player. The student is watching a recorded lecture and can pause, rewind, and answer checkpoints. Ground every answer in the playback context you are given. Keep replies short and conversational. When the student asks to move around the video or answer a checkpoint, use a tool call instead of describing the steps.`

var tutorReplySchema = &llm.Schema{
	Name:        "tutor-reply",
	Description: "A tutor reply with optional player tool calls",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"reply"},
		"properties": map[string]any{
			"reply": map[string]any{"type": "string"},
			"tool_calls": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"name"},
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
						"args": map[string]any{"type": "object"},
					},
				},
			},
		},
	},
}
