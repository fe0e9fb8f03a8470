package tutor

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lecto/internal/llm"
)

func newSessionFixture(t *testing.T, provider *llm.MockProvider) (*Session, chan Event) {
	t.Helper()
	events := make(chan Event, 32)
	s := NewSession(provider, NewRegistry(), func(ev Event) { events <- ev })
	s.baseWait = time.Millisecond
	return s, events
}

func waitEvent(t *testing.T, events chan Event, kind EventKind) Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event kind %d", kind)
		}
	}
}

func replyJSON(t *testing.T, reply string, calls ...map[string]any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"reply": reply, "tool_calls": calls})
	require.NoError(t, err)
	return raw
}

func TestSessionConnectDisconnect(t *testing.T) {
	s, events := newSessionFixture(t, llm.NewMockProvider())

	require.NoError(t, s.Connect(ModeText))
	ev := waitEvent(t, events, EventConnected)
	require.Equal(t, ModeText, ev.Mode)
	require.Equal(t, StateConnected, s.State())

	// Connecting twice is a no-op.
	require.NoError(t, s.Connect(ModeText))

	s.Disconnect()
	waitEvent(t, events, EventDisconnected)
	require.Equal(t, StateDisconnected, s.State())
}

func TestSessionRequiresProvider(t *testing.T) {
	s := NewSession(nil, NewRegistry(), nil)
	require.Error(t, s.Connect(ModeText))
	require.Error(t, s.Send(context.Background(), "hello"))
}

func TestSessionSendDeliversReplyAndTools(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: replyJSON(t, "Sure, rewinding.", map[string]any{
			"name": "seekToTime",
			"args": map[string]any{"seconds": 45.0},
		}),
	})
	s, events := newSessionFixture(t, mock)

	f := &fakeControls{}
	RegisterPlayerTools(s.registry, f)

	require.NoError(t, s.Connect(ModeText))
	s.PushContext("Playhead: 60s")
	require.NoError(t, s.Send(context.Background(), "go back to the proof"))

	ev := waitEvent(t, events, EventReply)
	require.Equal(t, "Sure, rewinding.", ev.Reply)
	require.Len(t, ev.Tools, 1)
	require.Equal(t, "seekToTime", ev.Tools[0].Name)
	require.Equal(t, "seeked to 45s", ev.Tools[0].Status)
	require.Equal(t, []float64{45}, f.seeks)

	// The request carried the pushed context and the tool inventory.
	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	require.Contains(t, req.System, "Playhead: 60s")
	require.Contains(t, req.System, "seekToTime")
	require.Equal(t, "go back to the proof", req.Messages[len(req.Messages)-1].Content)

	hist := s.History()
	require.Len(t, hist, 2)
	require.Equal(t, llm.RoleAssistant, hist[1].Role)
}

func TestSessionNonTransportErrorStaysConnected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Err: context.DeadlineExceeded},
	})
	s, events := newSessionFixture(t, mock)

	require.NoError(t, s.Connect(ModeText))
	require.NoError(t, s.Send(context.Background(), "hi"))

	ev := waitEvent(t, events, EventError)
	require.Error(t, ev.Err)
	require.Equal(t, StateConnected, s.State())
}

func TestSessionReconnectsAfterTransportDrop(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: replyJSON(t, "back online")},
	)
	s, events := newSessionFixture(t, mock)

	require.NoError(t, s.Connect(ModeText))
	waitEvent(t, events, EventConnected)
	require.NoError(t, s.Send(context.Background(), "hello?"))

	// The drop triggers a backoff reconnect which retries the message.
	waitEvent(t, events, EventConnected)
	ev := waitEvent(t, events, EventReply)
	require.Equal(t, "back online", ev.Reply)
	require.Equal(t, 2, mock.CallCount())
	require.Equal(t, StateConnected, s.State())
}

func TestSessionGivesUpAfterMaxAttempts(t *testing.T) {
	// An empty mock queue fails every call with provider-unavailable.
	mock := llm.NewMockProvider()
	s, events := newSessionFixture(t, mock)

	require.NoError(t, s.Connect(ModeText))
	require.NoError(t, s.Send(context.Background(), "anyone there?"))

	ev := waitEvent(t, events, EventError)
	require.ErrorContains(t, ev.Err, "tutor connection lost")
	waitEvent(t, events, EventDisconnected)
	require.Equal(t, StateDisconnected, s.State())
	require.Equal(t, 1+maxReconnectAttempts, mock.CallCount())
}

func TestSessionVoiceFallsBackToText(t *testing.T) {
	mock := llm.NewMockProvider()
	s, events := newSessionFixture(t, mock)

	require.NoError(t, s.Connect(ModeVoice))
	require.Equal(t, ModeVoice, s.Mode())
	require.NoError(t, s.Send(context.Background(), "can you hear me?"))

	ev := waitEvent(t, events, EventModeFallback)
	require.Equal(t, ModeText, ev.Mode)
	require.Equal(t, ModeText, s.Mode())
}

func TestSessionDisconnectDuringFlightIsQuiet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	s, events := newSessionFixture(t, mock)
	s.baseWait = 100 * time.Millisecond

	require.NoError(t, s.Connect(ModeText))
	waitEvent(t, events, EventConnected)
	require.NoError(t, s.Send(context.Background(), "hi"))
	s.Disconnect()
	waitEvent(t, events, EventDisconnected)

	// The in-flight failure lands after the user hung up; no reconnect,
	// no extra error surfaced.
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, StateDisconnected, s.State())
	select {
	case ev := <-events:
		require.NotEqual(t, EventError, ev.Kind)
	default:
	}
}
