package player

import (
	"fmt"
	"sync"

	"github.com/abhisek/lecto/internal/checkpoint"
)

// controls implements tutor.PlayerControls. Tool calls arrive on the tutor
// session's goroutine while all player state belongs to the UI loop, so
// every mutation is queued as a closure and drained by the next Update.
// Status strings are therefore optimistic: they describe the action taken,
// not its observed result.
type controls struct {
	mu      sync.Mutex
	pending []func(*PlayerScreen)

	// read-only after construction
	cps       []checkpoint.Checkpoint
	tolerance float64

	// refreshed by the UI loop each tick
	ctxText  string
	briefing string
	engaged  bool
}

func newControls(cps []checkpoint.Checkpoint, tolerance float64) *controls {
	return &controls{cps: cps, tolerance: tolerance}
}

func (c *controls) enqueue(fn func(*PlayerScreen)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, fn)
}

// drain returns and clears the queued tool actions.
func (c *controls) drain() []func(*PlayerScreen) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pending
	c.pending = nil
	return out
}

// setState refreshes the snapshot the read-only tools serve.
func (c *controls) setState(full, brief string, engaged bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctxText = full
	c.briefing = brief
	c.engaged = engaged
}

func (c *controls) SeekToTime(seconds float64) {
	c.enqueue(func(p *PlayerScreen) { p.sched.UserSeek(seconds) })
}

func (c *controls) SeekToCheckpoint(ts float64, typ checkpoint.Type, prompt string) bool {
	if checkpoint.FindNear(c.cps, ts, c.tolerance, typ, prompt) == nil {
		return false
	}
	c.enqueue(func(p *PlayerScreen) {
		if p.sched.Reopen(ts, typ, prompt) {
			p.openCheckpointOverlay()
		}
	})
	return true
}

func (c *controls) OpenTab(name string) bool {
	t, ok := tabByName(name)
	if !ok {
		return false
	}
	c.enqueue(func(p *PlayerScreen) { p.tab = t })
	return true
}

func (c *controls) PauseVideo() {
	c.enqueue(func(p *PlayerScreen) { p.sched.UserPause() })
}

func (c *controls) ResumeVideo() {
	c.enqueue(func(p *PlayerScreen) { p.sched.UserPlay() })
}

func (c *controls) AnswerCheckpoint(selection string) (string, bool) {
	c.mu.Lock()
	engaged := c.engaged
	c.mu.Unlock()
	if !engaged {
		return "", false
	}
	c.enqueue(func(p *PlayerScreen) { p.answerFromTutor(selection) })
	return fmt.Sprintf("submitted %q", selection), true
}

func (c *controls) ReplaySection(seconds float64) {
	c.enqueue(func(p *PlayerScreen) { p.sched.ReplaySection(seconds) })
}

func (c *controls) ContextText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctxText
}

func (c *controls) ContextBriefing() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.briefing
}
