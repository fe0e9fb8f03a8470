package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
)

func testSummary() *Summary {
	return &Summary{
		LectureTitle: "Intro to Algebra",
		Duration:     22 * time.Minute,
		WatchedSecs:  1280,
		Answered:     5,
		Correct:      4,
		Skipped:      1,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Lecture Complete" {
		t.Errorf("Title = %q, want %q", s.Title(), "Lecture Complete")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Intro to Algebra") {
		t.Error("expected the lecture title in the view")
	}
	if !strings.Contains(view, "Skipped: 1") {
		t.Error("expected the skipped count in the view")
	}
}

func TestSummaryScreen_NoAnswers(t *testing.T) {
	s := New(&Summary{LectureTitle: "Silent Watch", Duration: time.Minute})
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view with zero answers")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
