package playback

import (
	"testing"
	"time"
)

func TestClockAdvancesWhilePlaying(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c := NewClock(600)
	c.SetTimeFunc(func() time.Time { return now })

	c.Play()
	now = base.Add(10 * time.Second)
	if got := c.CurrentTime(); got != 10 {
		t.Errorf("CurrentTime = %v, want 10", got)
	}
}

func TestClockPausedHoldsPosition(t *testing.T) {
	base := time.Now()
	now := base
	c := NewClock(600)
	c.SetTimeFunc(func() time.Time { return now })

	c.Play()
	now = base.Add(5 * time.Second)
	c.Pause()
	now = base.Add(60 * time.Second)
	if got := c.CurrentTime(); got != 5 {
		t.Errorf("CurrentTime after pause = %v, want 5", got)
	}
}

func TestClockRate(t *testing.T) {
	base := time.Now()
	now := base
	c := NewClock(600)
	c.SetTimeFunc(func() time.Time { return now })

	c.SetRate(2.0)
	c.Play()
	now = base.Add(10 * time.Second)
	if got := c.CurrentTime(); got != 20 {
		t.Errorf("CurrentTime at 2x = %v, want 20", got)
	}

	c.SetRate(0) // ignored
	if c.Rate() != 2.0 {
		t.Errorf("Rate = %v, want 2.0", c.Rate())
	}
}

func TestClockSeekClamps(t *testing.T) {
	c := NewClock(300)
	c.Seek(-10)
	if c.CurrentTime() != 0 {
		t.Errorf("seek below 0 = %v", c.CurrentTime())
	}
	c.Seek(999)
	if c.CurrentTime() != 300 {
		t.Errorf("seek past end = %v", c.CurrentTime())
	}
}

func TestClockStopsAtEnd(t *testing.T) {
	base := time.Now()
	now := base
	c := NewClock(30)
	c.SetTimeFunc(func() time.Time { return now })

	c.Play()
	now = base.Add(45 * time.Second)
	if c.Playing() {
		t.Error("clock should stop at the end of the lecture")
	}
	if got := c.CurrentTime(); got != 30 {
		t.Errorf("CurrentTime = %v, want 30", got)
	}
}
