package player

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lecto/internal/checkpoint"
	"github.com/abhisek/lecto/internal/lecture"
	"github.com/abhisek/lecto/internal/router"
	"github.com/abhisek/lecto/internal/screen"
	"github.com/abhisek/lecto/internal/screens/summary"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLecture() *lecture.Lecture {
	return &lecture.Lecture{
		ID:              "algebra-01",
		Title:           "Intro to Algebra",
		DurationSeconds: 600,
		Transcript: []lecture.TranscriptLine{
			{Start: 0, End: 20, Text: "Welcome to the lecture."},
			{Start: 20, End: 40, Text: "Variables stand for unknown values."},
		},
		Concepts: []lecture.Concept{
			{Name: "Variables", Timestamp: 25, Description: "Letters as placeholders."},
		},
		Checkpoints: []checkpoint.Definition{
			{
				Timestamp:     30.0,
				Type:          checkpoint.TypeQuickQuiz,
				Prompt:        "What does x represent?",
				Options:       []string{"A constant", "An unknown value", "An operator"},
				CorrectAnswer: "An unknown value",
			},
		},
	}
}

func testPlayer() *PlayerScreen {
	return New(Deps{Lecture: testLecture(), UserID: "local"})
}

func tick(p *PlayerScreen, now time.Time) *PlayerScreen {
	var scr screen.Screen = p
	scr, _ = scr.Update(playTickMsg(now))
	return scr.(*PlayerScreen)
}

func TestPlayerTitle(t *testing.T) {
	p := testPlayer()
	if p.Title() != "Intro to Algebra" {
		t.Errorf("Title = %q, want lecture title", p.Title())
	}
}

func TestSpaceTogglesPlayback(t *testing.T) {
	p := testPlayer()
	p.clock.Play()

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress(' '))
	p = scr.(*PlayerScreen)
	if p.clock.Playing() {
		t.Error("expected space to pause playback")
	}

	scr, _ = p.Update(keyPress(' '))
	p = scr.(*PlayerScreen)
	if !p.clock.Playing() {
		t.Error("expected space to resume playback")
	}
}

func TestArrowKeysSeek(t *testing.T) {
	p := testPlayer()
	p.clock.Seek(100)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	p = scr.(*PlayerScreen)
	if got := p.clock.CurrentTime(); got != 110 {
		t.Errorf("after skip forward CurrentTime = %v, want 110", got)
	}

	scr, _ = p.Update(specialKey(tea.KeyLeft))
	p = scr.(*PlayerScreen)
	if got := p.clock.CurrentTime(); got != 100 {
		t.Errorf("after skip back CurrentTime = %v, want 100", got)
	}
}

func TestSpeedSteps(t *testing.T) {
	p := testPlayer()

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress(']'))
	p = scr.(*PlayerScreen)
	if got := p.clock.Rate(); got != 1.25 {
		t.Errorf("rate after ] = %v, want 1.25", got)
	}

	scr, _ = p.Update(keyPress('['))
	scr, _ = scr.Update(keyPress('['))
	p = scr.(*PlayerScreen)
	if got := p.clock.Rate(); got != 0.75 {
		t.Errorf("rate after [[ = %v, want 0.75", got)
	}
}

func TestSpeedClampsAtBounds(t *testing.T) {
	p := testPlayer()

	var scr screen.Screen = p
	for range 10 {
		scr, _ = scr.Update(keyPress(']'))
	}
	p = scr.(*PlayerScreen)
	if got := p.clock.Rate(); got != 2.0 {
		t.Errorf("rate = %v, want clamp at 2.0", got)
	}
}

func TestCheckpointNudgeThenEngage(t *testing.T) {
	p := testPlayer()
	now := time.Now()

	p.clock.Seek(31)
	p = tick(p, now)

	if p.sched.Nudged() == nil {
		t.Fatal("expected a nudge after crossing the checkpoint")
	}

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	p = scr.(*PlayerScreen)

	if p.sched.Active() == nil {
		t.Fatal("expected checkpoint to be engaged")
	}
	if p.useText {
		t.Error("expected option list for a checkpoint with options")
	}
	if len(p.opts.Options) != 3 {
		t.Errorf("option list has %d options, want 3", len(p.opts.Options))
	}
}

func TestAnswerShowsFeedbackAndCompletes(t *testing.T) {
	p := testPlayer()
	now := time.Now()

	p.clock.Seek(31)
	p = tick(p, now)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // engage nudge
	scr, _ = scr.Update(specialKey(tea.KeyDown))  // move to the correct option
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // submit
	p = scr.(*PlayerScreen)

	if p.feedback == nil {
		t.Fatal("expected feedback after answering")
	}
	if !p.feedback.IsCorrect {
		t.Error("expected the second option to resolve correct")
	}

	key := p.cps[0].Key
	if !p.sched.IsCompleted(key) {
		t.Error("expected checkpoint marked completed")
	}
	if _, ok := p.respStore.Get(key); !ok {
		t.Error("expected a stored response record")
	}
}

func TestFeedbackRewatchRewinds(t *testing.T) {
	p := testPlayer()
	now := time.Now()

	p.clock.Seek(31)
	p = tick(p, now)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // engage
	scr, _ = scr.Update(specialKey(tea.KeyEnter)) // submit first option (wrong)
	p = scr.(*PlayerScreen)

	if p.feedback == nil {
		t.Fatal("expected feedback")
	}
	if p.feedback.IsCorrect {
		t.Fatal("expected first option to be wrong")
	}

	scr, _ = p.Update(keyPress('w'))
	p = scr.(*PlayerScreen)
	if p.feedback != nil {
		t.Error("expected feedback cleared after rewatch")
	}
	if got := p.clock.CurrentTime(); got < 22 || got > 23 {
		t.Errorf("expected playhead near context start 22, got %v", got)
	}
	if p.sched.IsCompleted(p.cps[0].Key) {
		t.Error("expected rewatch to clear the completed flag")
	}
}

func TestDismissNudgeSkips(t *testing.T) {
	p := testPlayer()
	now := time.Now()

	p.clock.Seek(31)
	p = tick(p, now)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('d'))
	p = scr.(*PlayerScreen)

	if p.sched.Nudged() != nil {
		t.Error("expected nudge dismissed")
	}
	if p.sched.Active() != nil {
		t.Error("expected no engagement after dismiss")
	}
}

func TestHydratedMarksCompleted(t *testing.T) {
	p := testPlayer()
	key := p.cps[0].Key

	var scr screen.Screen = p
	scr, _ = scr.Update(hydratedMsg{Keys: []checkpoint.Key{key}})
	p = scr.(*PlayerScreen)

	if !p.sched.IsCompleted(key) {
		t.Error("expected hydrated key marked completed")
	}

	// A later tick past the timestamp must not re-trigger it.
	p.clock.Seek(31)
	p = tick(p, time.Now())
	if p.sched.Nudged() != nil || p.sched.Active() != nil {
		t.Error("expected no nudge for a hydrated checkpoint")
	}
}

func TestTutorPanelUnavailableWithoutProvider(t *testing.T) {
	p := testPlayer()

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	p = scr.(*PlayerScreen)

	if p.panelOpen {
		t.Error("expected panel to stay closed without a provider")
	}
	if p.tutorNote == "" {
		t.Error("expected a note explaining the tutor is unavailable")
	}
}

func TestLectureEndReplacesWithSummary(t *testing.T) {
	p := testPlayer()
	now := time.Now()

	p.clock.Seek(31)
	p = tick(p, now)
	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('d')) // skip the checkpoint
	p = scr.(*PlayerScreen)

	p.clock.Seek(600)
	scr, cmd := p.Update(playTickMsg(now.Add(time.Second)))
	p = scr.(*PlayerScreen)
	if cmd == nil {
		t.Fatal("expected a command at end of lecture")
	}

	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	sum, ok := msg.Screen.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("expected summary screen, got %T", msg.Screen)
	}
	if sum.Title() != "Lecture Complete" {
		t.Errorf("summary title = %q", sum.Title())
	}
}

func TestViewRendersMainStates(t *testing.T) {
	p := testPlayer()
	if p.View(80, 24) == "" {
		t.Error("expected non-empty main view")
	}

	p.clock.Seek(31)
	p = tick(p, time.Now())
	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	p = scr.(*PlayerScreen)
	if p.View(80, 24) == "" {
		t.Error("expected non-empty checkpoint view")
	}
}
