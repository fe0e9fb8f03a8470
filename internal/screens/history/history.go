package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lecto/internal/router"
	"github.com/abhisek/lecto/internal/screen"
	"github.com/abhisek/lecto/internal/store"
	"github.com/abhisek/lecto/internal/ui/layout"
	"github.com/abhisek/lecto/internal/ui/theme"
)

type historyLoadedMsg struct {
	Stats []store.LectureStats
	Err   error
}

// HistoryScreen summarizes answer history per lecture.
type HistoryScreen struct {
	eventRepo store.EventRepo
	userID    string
	titles    map[string]string
	stats     []store.LectureStats
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. titles maps lecture IDs to display
// titles; IDs without an entry render as-is.
func New(eventRepo store.EventRepo, userID string, titles map[string]string) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo, userID: userID, titles: titles}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		stats, err := s.eventRepo.Stats(context.Background(), s.userID)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.stats)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.stats) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No history yet. Watch a lecture!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, st := range s.stats {
		title := st.LectureID
		if t, ok := s.titles[st.LectureID]; ok {
			title = t
		}

		var accuracy float64
		if st.Answered > 0 {
			accuracy = float64(st.Correct) / float64(st.Answered) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-30s  %d answered  %.0f%% correct  %d interactions",
			prefix, title, st.Answered, accuracy, st.Interactions)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
