package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lecto/internal/answers"
	"github.com/abhisek/lecto/internal/bus"
	"github.com/abhisek/lecto/internal/checkpoint"
	"github.com/abhisek/lecto/internal/playback"
	"github.com/abhisek/lecto/internal/responses"
	"github.com/abhisek/lecto/internal/telemetry"
)

// Config holds the scheduler's timing policy.
type Config struct {
	// AnnounceLead and AnnounceMin bound the advisory announce window:
	// a checkpoint is announced when AnnounceMin < timestamp-now <= AnnounceLead.
	AnnounceLead float64
	AnnounceMin  float64

	// NudgeTimeout is how long a nudge stays visible before auto-dismissing
	// as a skip.
	NudgeTimeout time.Duration

	// ReopenTolerance bounds checkpoint matching for seek-initiated reopens.
	ReopenTolerance float64

	// Answers is the answer-resolution policy.
	Answers answers.Config
}

// DefaultConfig returns the reference timing policy.
func DefaultConfig() Config {
	return Config{
		AnnounceLead:    5,
		AnnounceMin:     0.5,
		NudgeTimeout:    8 * time.Second,
		ReopenTolerance: 0.75,
		Answers:         answers.DefaultConfig(),
	}
}

// Nudge is the soft, non-blocking invitation to engage a checkpoint. At most
// one nudge is visible at a time.
type Nudge struct {
	Checkpoint checkpoint.Checkpoint
	Deadline   time.Time
}

// Engagement is an open checkpoint. At most one checkpoint is engaged at a
// time.
type Engagement struct {
	Checkpoint checkpoint.Checkpoint
	Reopened   bool // opened from review/tool after completion
}

// Scheduler coordinates checkpoint lifecycles against the playback clock.
// It is driven by Tick calls from the UI loop and is not safe for
// concurrent use; all mutations of the transport inside a session funnel
// through it.
//
// Per-checkpoint lifecycle: idle -> announced -> nudged -> engaged ->
// completed, with skip (explicit or timeout) also terminating in completed.
// Completed checkpoints never re-trigger automatically; only rewatch and
// reopen reprocess them.
type Scheduler struct {
	cfg       Config
	transport playback.Transport
	cps       []checkpoint.Checkpoint
	bus       *bus.Bus
	log       *telemetry.Log
	store     *responses.Store

	announced map[checkpoint.Key]bool
	completed map[checkpoint.Key]bool
	dismissed map[checkpoint.Key]bool

	nudge  *Nudge
	active *Engagement
}

// New creates a scheduler over a normalized checkpoint sequence.
func New(cfg Config, transport playback.Transport, cps []checkpoint.Checkpoint, b *bus.Bus, log *telemetry.Log, store *responses.Store) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		transport: transport,
		cps:       cps,
		bus:       b,
		log:       log,
		store:     store,
		announced: make(map[checkpoint.Key]bool),
		completed: make(map[checkpoint.Key]bool),
		dismissed: make(map[checkpoint.Key]bool),
	}
}

// MarkCompleted marks checkpoints completed without replaying nudges. Used
// when hydration finds answers from prior sessions.
func (s *Scheduler) MarkCompleted(keys []checkpoint.Key) {
	for _, k := range keys {
		s.completed[k] = true
	}
}

// Tick advances the state machine. It tolerates coarse, irregular intervals:
// trigger detection is currentTime >= timestamp, never equality.
//
// Pass order: nudge expiry, announce, trigger. Expiring first frees the
// nudge slot promptly; when two checkpoints become eligible in the same
// tick only the earlier one nudges and the later is deferred to a
// subsequent tick, preserving arrival order.
func (s *Scheduler) Tick(now time.Time) {
	s.expireNudge(now)
	current := s.transport.CurrentTime()
	s.announcePass(current)
	s.triggerPass(current, now)
}

func (s *Scheduler) expireNudge(now time.Time) {
	if s.nudge == nil || now.Before(s.nudge.Deadline) {
		return
	}
	cp := s.nudge.Checkpoint
	s.nudge = nil
	s.markSkipped(cp, "nudge timeout")
	s.bus.Publish(bus.SignalNudgeDismissed, map[string]any{"key": cp.Key.String(), "reason": "timeout"})
}

func (s *Scheduler) announcePass(current float64) {
	for _, cp := range s.cps {
		lead := cp.Timestamp() - current
		if lead > s.cfg.AnnounceLead {
			break // sorted; everything after is further out
		}
		if lead <= s.cfg.AnnounceMin {
			continue
		}
		if s.completed[cp.Key] || s.announced[cp.Key] {
			continue
		}
		s.announced[cp.Key] = true
		s.bus.Publish(bus.SignalAnnounceUpcoming, map[string]any{
			"key":       cp.Key.String(),
			"timestamp": cp.Timestamp(),
		})
		return // earliest only
	}
}

func (s *Scheduler) triggerPass(current float64, now time.Time) {
	if s.nudge != nil || s.active != nil {
		return
	}
	for _, cp := range s.cps {
		if cp.Timestamp() > current {
			break
		}
		if s.completed[cp.Key] {
			continue
		}
		if s.dismissed[cp.Key] {
			// Previously skipped this identity in-session: complete
			// silently and keep scanning.
			s.completed[cp.Key] = true
			continue
		}
		s.nudge = &Nudge{Checkpoint: cp, Deadline: now.Add(s.cfg.NudgeTimeout)}
		s.bus.Publish(bus.SignalNudgeShown, map[string]any{
			"key":       cp.Key.String(),
			"deadline":  s.nudge.Deadline,
			"timestamp": cp.Timestamp(),
		})
		return
	}
}

// Nudged returns the visible nudge, if any.
func (s *Scheduler) Nudged() *Nudge { return s.nudge }

// Active returns the engaged checkpoint, if any.
func (s *Scheduler) Active() *Engagement { return s.active }

// IsCompleted reports whether the checkpoint has reached its terminal state
// this session.
func (s *Scheduler) IsCompleted(key checkpoint.Key) bool { return s.completed[key] }

// Sets returns copies of the dismissed and completed sets for review
// reconciliation.
func (s *Scheduler) Sets() (dismissed, completed map[checkpoint.Key]bool) {
	dismissed = make(map[checkpoint.Key]bool, len(s.dismissed))
	for k := range s.dismissed {
		dismissed[k] = true
	}
	completed = make(map[checkpoint.Key]bool, len(s.completed))
	for k := range s.completed {
		completed[k] = true
	}
	return dismissed, completed
}

// EngageNudge opens the currently nudged checkpoint: playback pauses, the
// nudge timer is cancelled, and the checkpoint becomes the single engaged
// slot.
func (s *Scheduler) EngageNudge() bool {
	if s.nudge == nil || s.active != nil {
		return false
	}
	cp := s.nudge.Checkpoint
	s.nudge = nil
	s.engage(cp, false)
	return true
}

// DismissNudge is the user explicitly waving the nudge away. Same terminal
// state as the timeout: skipped, completed.
func (s *Scheduler) DismissNudge() bool {
	if s.nudge == nil {
		return false
	}
	cp := s.nudge.Checkpoint
	s.nudge = nil
	s.markSkipped(cp, "dismissed")
	s.bus.Publish(bus.SignalNudgeDismissed, map[string]any{"key": cp.Key.String(), "reason": "user"})
	return true
}

func (s *Scheduler) engage(cp checkpoint.Checkpoint, reopened bool) {
	s.transport.Pause()
	s.active = &Engagement{Checkpoint: cp, Reopened: reopened}
	s.log.Append(telemetry.EventCheckpointEngage, s.transport.CurrentTime(), cp.Prompt(), map[string]string{
		"key": cp.Key.String(),
	})
	signal := bus.SignalCheckpointEngaged
	if reopened {
		signal = bus.SignalCheckpointReengaged
	}
	s.bus.Publish(signal, map[string]any{"key": cp.Key.String()})
}

// ResolveAnswer records the student's answer for the engaged checkpoint,
// persists it, completes the checkpoint, and resumes playback. Persistence
// failures never block: the local record and the completed state stand
// regardless.
func (s *Scheduler) ResolveAnswer(ctx context.Context, in answers.Input) (answers.Outcome, bool) {
	if s.active == nil {
		return answers.Outcome{}, false
	}
	cp := s.active.Checkpoint
	out := answers.Resolve(cp, in, s.cfg.Answers)

	videoTime := s.transport.CurrentTime()
	s.store.Put(ctx, responses.Record{
		Key:           cp.Key,
		SelectedIndex: out.SelectedIndex,
		IsCorrect:     out.IsCorrect,
		AnswerText:    out.AnswerText,
		AnsweredAt:    time.Now(),
		VideoTime:     videoTime,
	})

	meta := map[string]string{
		"key":            cp.Key.String(),
		"selectedAnswer": out.AnswerText,
	}
	if ci := answers.CorrectIndex(cp); ci >= 0 {
		meta["correctAnswer"] = cp.Options[ci]
	}
	s.log.Append(telemetry.EventCheckpointComplete, videoTime, cp.Prompt(), meta)

	s.completed[cp.Key] = true
	s.bus.Publish(bus.SignalCheckpointAnswered, map[string]any{
		"key":     cp.Key.String(),
		"correct": out.IsCorrect,
	})
	s.bus.Publish(bus.SignalCheckpointCompleted, map[string]any{"key": cp.Key.String()})

	s.active = nil
	s.transport.Play()
	return out, true
}

// SkipActive closes the engaged checkpoint without an answer.
func (s *Scheduler) SkipActive() bool {
	if s.active == nil {
		return false
	}
	cp := s.active.Checkpoint
	s.active = nil
	s.markSkipped(cp, "skipped while engaged")
	s.transport.Play()
	return true
}

// markSkipped records the skipped -> completed transition.
func (s *Scheduler) markSkipped(cp checkpoint.Checkpoint, details string) {
	s.dismissed[cp.Key] = true
	s.completed[cp.Key] = true
	s.log.Append(telemetry.EventCheckpointSkip, s.transport.CurrentTime(), details, map[string]string{
		"key": cp.Key.String(),
	})
	s.bus.Publish(bus.SignalCheckpointCompleted, map[string]any{"key": cp.Key.String(), "skipped": true})
}

// Rewatch seeks back to the engaged checkpoint's context start and resumes
// playback, clearing its flags so it re-triggers naturally after the
// rewatch.
func (s *Scheduler) Rewatch() bool {
	if s.active == nil {
		return false
	}
	cp := s.active.Checkpoint
	s.active = nil

	delete(s.completed, cp.Key)
	delete(s.announced, cp.Key)
	delete(s.dismissed, cp.Key)

	from := s.transport.CurrentTime()
	s.transport.Seek(cp.ContextStart)
	s.transport.Play()
	s.bus.Publish(bus.SignalSeek, map[string]any{"from": from, "to": cp.ContextStart, "reason": "rewatch"})
	return true
}

// RewatchResolved is the rewatch offer on the answer feedback: the
// engagement already resolved, so the checkpoint is located by key,
// its flags cleared, and playback seeked back to the context start. It
// re-triggers naturally after the replay.
func (s *Scheduler) RewatchResolved(key checkpoint.Key) bool {
	if s.active != nil {
		return false
	}
	for _, cp := range s.cps {
		if cp.Key != key {
			continue
		}
		delete(s.completed, key)
		delete(s.announced, key)
		delete(s.dismissed, key)

		from := s.transport.CurrentTime()
		s.transport.Seek(cp.ContextStart)
		s.transport.Play()
		s.bus.Publish(bus.SignalSeek, map[string]any{"from": from, "to": cp.ContextStart, "reason": "rewatch"})
		return true
	}
	return false
}

// Reopen seeks to a checkpoint near target (±ReopenTolerance seconds,
// optionally narrowed by type and prompt), pauses, and force-opens it
// without waiting for the trigger pass. Reopening clears the dismissed flag
// but leaves completed standing so the trigger pass never re-fires it.
func (s *Scheduler) Reopen(target float64, typ checkpoint.Type, prompt string) bool {
	if s.active != nil {
		return false
	}
	cp := checkpoint.FindNear(s.cps, target, s.cfg.ReopenTolerance, typ, prompt)
	if cp == nil {
		return false
	}

	delete(s.dismissed, cp.Key)

	from := s.transport.CurrentTime()
	s.transport.Seek(cp.Timestamp())
	s.bus.Publish(bus.SignalSeek, map[string]any{"from": from, "to": cp.Timestamp(), "reason": "reopen"})
	s.nudge = nil
	s.engage(*cp, true)
	return true
}

// UserPause funnels a user pause through the session's single transport
// mutation point.
func (s *Scheduler) UserPause() {
	s.transport.Pause()
	s.log.Append(telemetry.EventManualPause, s.transport.CurrentTime(), "", nil)
}

// UserPlay resumes playback at the user's request. Ignored while a
// checkpoint is engaged: resolving or skipping it is the only way out.
func (s *Scheduler) UserPlay() {
	if s.active != nil {
		return
	}
	s.transport.Play()
	s.log.Append(telemetry.EventManualPlay, s.transport.CurrentTime(), "", nil)
}

// UserSeek jumps the playhead. Seeking away from a nudged checkpoint leaves
// the nudge standing; only dismiss, timeout, or engage changes its state.
func (s *Scheduler) UserSeek(to float64) {
	from := s.transport.CurrentTime()
	s.transport.Seek(to)
	s.log.Append(telemetry.EventSeek, to, fmt.Sprintf("%.1f -> %.1f", from, to), nil)
	s.bus.Publish(bus.SignalSeek, map[string]any{"from": from, "to": to})
}

// UserSkipBack jumps back by seconds. Recorded as a seek so repeated
// rewinds feed struggle detection.
func (s *Scheduler) UserSkipBack(seconds float64) {
	from := s.transport.CurrentTime()
	to := from - seconds
	if to < 0 {
		to = 0
	}
	s.transport.Seek(to)
	s.log.Append(telemetry.EventSeek, to, fmt.Sprintf("rewind %.0fs", seconds), nil)
	s.bus.Publish(bus.SignalRewind, map[string]any{"seconds": seconds})
}

// UserSkipForward jumps forward by seconds.
func (s *Scheduler) UserSkipForward(seconds float64) {
	from := s.transport.CurrentTime()
	to := from + seconds
	s.transport.Seek(to)
	s.log.Append(telemetry.EventSeek, to, fmt.Sprintf("forward %.0fs", seconds), nil)
	s.bus.Publish(bus.SignalForward, map[string]any{"seconds": seconds})
}

// UserSetRate changes the playback rate.
func (s *Scheduler) UserSetRate(rate float64) {
	s.transport.SetRate(rate)
	s.log.Append(telemetry.EventSpeedChange, s.transport.CurrentTime(), fmt.Sprintf("%.2fx", rate), nil)
	s.bus.Publish(bus.SignalSpeedChange, map[string]any{"rate": rate})
}

// ReplaySection jumps back by seconds on the tutor's behalf. Logged as a
// rewind, not a seek, so tutor-driven replays never feed struggle
// detection.
func (s *Scheduler) ReplaySection(seconds float64) {
	from := s.transport.CurrentTime()
	to := from - seconds
	if to < 0 {
		to = 0
	}
	s.transport.Seek(to)
	s.transport.Play()
	s.log.Append(telemetry.EventRewind, to, fmt.Sprintf("replay %.0fs", seconds), nil)
	s.bus.Publish(bus.SignalRewind, map[string]any{"seconds": seconds, "reason": "replay"})
}
