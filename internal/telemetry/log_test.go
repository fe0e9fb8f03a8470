package telemetry

import (
	"testing"
	"time"
)

func TestAppendAssignsIDsAndPreservesOrder(t *testing.T) {
	l := NewLog()

	a := l.Append(EventSeek, 10, "10 -> 40", nil)
	b := l.Append(EventManualPause, 40, "", nil)

	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Errorf("ids not unique: %q, %q", a.ID, b.ID)
	}

	all := l.All()
	if len(all) != 2 || all[0].Type != EventSeek || all[1].Type != EventManualPause {
		t.Errorf("order not preserved: %+v", all)
	}
}

func TestByTypeAndCounts(t *testing.T) {
	l := NewLog()
	l.Append(EventSeek, 10, "", nil)
	l.Append(EventSeek, 12, "", nil)
	l.Append(EventManualPlay, 12, "", nil)

	if got := len(l.ByType(EventSeek)); got != 2 {
		t.Errorf("ByType(seek) len = %d, want 2", got)
	}
	counts := l.Counts()
	if counts[EventSeek] != 2 || counts[EventManualPlay] != 1 {
		t.Errorf("Counts = %v", counts)
	}
}

func TestWindow(t *testing.T) {
	l := NewLog()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	clock := base
	l.SetClock(func() time.Time { return clock })

	l.Append(EventSeek, 5, "", nil)
	clock = base.Add(100 * time.Second)
	l.Append(EventSeek, 6, "", nil)

	now := base.Add(120 * time.Second)
	in := l.Window(now, 90*time.Second)
	if len(in) != 1 || in[0].VideoTime != 6 {
		t.Errorf("Window = %+v, want only the recent event", in)
	}
}

func TestSinkReceivesEvents(t *testing.T) {
	l := NewLog()
	var got []Event
	l.AddSink(func(ev Event) { got = append(got, ev) })

	l.Append(EventCheckpointEngage, 120, "q1", map[string]string{"key": "120-quickQuiz-q1"})

	if len(got) != 1 || got[0].Metadata["key"] != "120-quickQuiz-q1" {
		t.Errorf("sink got %+v", got)
	}
}
