package sched

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestAfterFires(t *testing.T) {
	var s Slot
	fired := make(chan struct{})
	s.After(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("task never fired")
	}
	if s.Pending() {
		t.Error("Pending after fire")
	}
}

func TestCancelStopsTask(t *testing.T) {
	var s Slot
	var fired atomic.Bool
	s.After(20*time.Millisecond, func() { fired.Store(true) })
	s.Cancel()

	time.Sleep(50 * time.Millisecond)
	if fired.Load() {
		t.Error("cancelled task fired")
	}
	if s.Pending() {
		t.Error("Pending after cancel")
	}
}

func TestAfterReplacesPrevious(t *testing.T) {
	var s Slot
	var first, second atomic.Bool
	s.After(20*time.Millisecond, func() { first.Store(true) })
	s.After(5*time.Millisecond, func() { second.Store(true) })

	time.Sleep(60 * time.Millisecond)
	if first.Load() {
		t.Error("superseded task fired")
	}
	if !second.Load() {
		t.Error("replacement task did not fire")
	}
}

func TestCancelIdempotent(t *testing.T) {
	var s Slot
	s.Cancel()
	s.Cancel()
}
