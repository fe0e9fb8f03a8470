package playback

import (
	"sync"
	"time"
)

// Transport is the playback clock the orchestration core drives. All
// play/pause/seek mutations in a session must funnel through the single
// Transport instance so a checkpoint pause and a user control can never
// race.
type Transport interface {
	Play()
	Pause()
	Seek(seconds float64)
	SetRate(rate float64)
	CurrentTime() float64
	Duration() float64
	Playing() bool
	Rate() float64
}

// Clock is a simulated playhead: it advances with wall-clock time scaled by
// the playback rate. Real media decoding is out of scope; the player renders
// transcript lines against this clock.
type Clock struct {
	mu       sync.Mutex
	duration float64
	position float64
	rate     float64
	playing  bool
	lastTick time.Time
	now      func() time.Time
}

var _ Transport = (*Clock)(nil)

// NewClock creates a paused clock at position 0.
func NewClock(duration float64) *Clock {
	return &Clock{
		duration: duration,
		rate:     1.0,
		now:      time.Now,
	}
}

// SetTimeFunc overrides the wall clock, for tests.
func (c *Clock) SetTimeFunc(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	c.lastTick = now()
}

func (c *Clock) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing {
		return
	}
	c.playing = true
	c.lastTick = c.now()
}

func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advanceLocked()
	c.playing = false
}

func (c *Clock) Seek(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	if c.duration > 0 && seconds > c.duration {
		seconds = c.duration
	}
	c.position = seconds
	c.lastTick = c.now()
}

func (c *Clock) SetRate(rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rate <= 0 {
		return
	}
	c.advanceLocked()
	c.rate = rate
}

func (c *Clock) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advanceLocked()
	return c.position
}

func (c *Clock) Duration() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

func (c *Clock) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advanceLocked()
	return c.playing
}

func (c *Clock) Rate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}

// advanceLocked folds elapsed wall time into the position. Callers hold mu.
func (c *Clock) advanceLocked() {
	if !c.playing {
		return
	}
	now := c.now()
	c.position += now.Sub(c.lastTick).Seconds() * c.rate
	c.lastTick = now
	if c.duration > 0 && c.position >= c.duration {
		c.position = c.duration
		c.playing = false
	}
}
