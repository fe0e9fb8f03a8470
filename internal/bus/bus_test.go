package bus

import "testing"

func TestPublishSubscribe(t *testing.T) {
	b := New()

	var got []Event
	b.Subscribe(SignalNudgeShown, func(ev Event) { got = append(got, ev) })

	b.Publish(SignalNudgeShown, map[string]any{"key": "120-quickQuiz-q"})
	b.Publish(SignalSeek, map[string]any{"from": 10.0, "to": 40.0})

	if len(got) != 1 {
		t.Fatalf("handler fired %d times, want 1", len(got))
	}
	if got[0].Payload["key"] != "120-quickQuiz-q" {
		t.Errorf("payload = %v", got[0].Payload)
	}
}

func TestSubscribeAll(t *testing.T) {
	b := New()

	count := 0
	b.SubscribeAll(func(Event) { count++ })

	b.Publish(SignalSeek, nil)
	b.Publish(SignalRewind, nil)

	if count != 2 {
		t.Errorf("all-handler fired %d times, want 2", count)
	}
}

func TestHandlerOrder(t *testing.T) {
	b := New()

	var order []int
	b.Subscribe(SignalSpeedChange, func(Event) { order = append(order, 1) })
	b.Subscribe(SignalSpeedChange, func(Event) { order = append(order, 2) })

	b.Publish(SignalSpeedChange, nil)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}
