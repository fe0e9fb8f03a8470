package tutor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lecto/internal/checkpoint"
)

type fakeControls struct {
	seeks       []float64
	replays     []float64
	tabs        []string
	paused      bool
	resumed     bool
	answered    string
	answerOpen  bool
	cpFound     bool
	lastCPQuery struct {
		ts     float64
		typ    checkpoint.Type
		prompt string
	}
}

func (f *fakeControls) SeekToTime(s float64) { f.seeks = append(f.seeks, s) }

func (f *fakeControls) SeekToCheckpoint(ts float64, typ checkpoint.Type, prompt string) bool {
	f.lastCPQuery.ts, f.lastCPQuery.typ, f.lastCPQuery.prompt = ts, typ, prompt
	return f.cpFound
}

func (f *fakeControls) OpenTab(name string) bool {
	f.tabs = append(f.tabs, name)
	return name == "transcript" || name == "checkpoints" || name == "notes"
}

func (f *fakeControls) PauseVideo()  { f.paused = true }
func (f *fakeControls) ResumeVideo() { f.resumed = true }

func (f *fakeControls) AnswerCheckpoint(sel string) (string, bool) {
	f.answered = sel
	if !f.answerOpen {
		return "", false
	}
	return "answered: correct", true
}

func (f *fakeControls) ReplaySection(s float64) { f.replays = append(f.replays, s) }
func (f *fakeControls) ContextText() string     { return "full context" }
func (f *fakeControls) ContextBriefing() string { return "brief" }

func newToolFixture() (*Registry, *fakeControls) {
	r := NewRegistry()
	f := &fakeControls{}
	RegisterPlayerTools(r, f)
	return r, f
}

func TestRegistryDispatchUnknownTool(t *testing.T) {
	r, _ := newToolFixture()
	status := r.Dispatch("launchRocket", nil)
	require.Contains(t, status, "unknown tool")
}

func TestRegistryNamesCoverPlayerTools(t *testing.T) {
	r, _ := newToolFixture()
	require.ElementsMatch(t, []string{
		"getContext", "getContextBriefing", "seekToTime", "seekToCheckpoint",
		"openTab", "pauseVideo", "resumeVideo", "answerCheckpoint", "replaySection",
	}, r.Names())
}

func TestSeekToTimeTool(t *testing.T) {
	r, f := newToolFixture()

	status := r.Dispatch("seekToTime", map[string]any{"seconds": 90.0})
	require.Equal(t, "seeked to 90s", status)
	require.Equal(t, []float64{90}, f.seeks)

	status = r.Dispatch("seekToTime", map[string]any{"seconds": "soon"})
	require.Contains(t, status, "numeric")
	require.Len(t, f.seeks, 1)
}

func TestSeekToCheckpointTool(t *testing.T) {
	r, f := newToolFixture()

	f.cpFound = true
	status := r.Dispatch("seekToCheckpoint", map[string]any{
		"timestamp": 120.0,
		"type":      "quickQuiz",
		"prompt":    "pick one",
	})
	require.Contains(t, status, "opened checkpoint")
	require.Equal(t, 120.0, f.lastCPQuery.ts)
	require.Equal(t, checkpoint.TypeQuickQuiz, f.lastCPQuery.typ)
	require.Equal(t, "pick one", f.lastCPQuery.prompt)

	f.cpFound = false
	status = r.Dispatch("seekToCheckpoint", map[string]any{"timestamp": 7.0})
	require.Contains(t, status, "no checkpoint near")
}

func TestPauseResumeAndTabs(t *testing.T) {
	r, f := newToolFixture()

	require.Equal(t, "paused", r.Dispatch("pauseVideo", nil))
	require.True(t, f.paused)
	require.Equal(t, "resumed", r.Dispatch("resumeVideo", nil))
	require.True(t, f.resumed)

	require.Equal(t, "opened notes", r.Dispatch("openTab", map[string]any{"tabName": "notes"}))
	require.Contains(t, r.Dispatch("openTab", map[string]any{"tabName": "casino"}), "unknown tab")
	require.Contains(t, r.Dispatch("openTab", nil), "needs")
}

func TestAnswerCheckpointTool(t *testing.T) {
	r, f := newToolFixture()

	status := r.Dispatch("answerCheckpoint", map[string]any{"selection": "B"})
	require.Equal(t, "no checkpoint is open", status)

	f.answerOpen = true
	status = r.Dispatch("answerCheckpoint", map[string]any{"selection": "B"})
	require.Equal(t, "answered: correct", status)
	require.Equal(t, "B", f.answered)
}

func TestReplaySectionDefaults(t *testing.T) {
	r, f := newToolFixture()

	r.Dispatch("replaySection", map[string]any{"seconds": 30.0})
	r.Dispatch("replaySection", nil)
	require.Equal(t, []float64{30, 20}, f.replays)
}

func TestContextTools(t *testing.T) {
	r, _ := newToolFixture()
	require.Equal(t, "full context", r.Dispatch("getContext", nil))
	require.Equal(t, "brief", r.Dispatch("getContextBriefing", nil))
}
