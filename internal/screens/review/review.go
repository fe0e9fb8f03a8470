package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lecto/internal/checkpoint"
	"github.com/abhisek/lecto/internal/responses"
	"github.com/abhisek/lecto/internal/router"
	"github.com/abhisek/lecto/internal/screen"
	"github.com/abhisek/lecto/internal/ui/layout"
	"github.com/abhisek/lecto/internal/ui/theme"
)

// ReviewScreen lists every checkpoint the viewer has passed through,
// answered or skipped, and lets them jump back to one.
type ReviewScreen struct {
	items    []responses.ReviewItem
	onReopen func(cp checkpoint.Checkpoint) tea.Cmd
	selected int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a review screen over the reconciled checkpoint list.
// onReopen is invoked when the viewer picks an item; the command it returns
// runs after selection.
func New(items []responses.ReviewItem, onReopen func(cp checkpoint.Checkpoint) tea.Cmd) *ReviewScreen {
	return &ReviewScreen{items: items, onReopen: onReopen}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Rewatch"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
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
			if s.selected < len(s.items)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.items) == 0 || s.onReopen == nil {
				return s, nil
			}
			return s, s.onReopen(s.items[s.selected].Checkpoint)
		}
	}
	return s, nil
}

func (s *ReviewScreen) View(width, height int) string {
	if len(s.items) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing to review yet. Keep watching!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, item := range s.items {
		cp := item.Checkpoint

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		prompt := cp.Prompt()
		if len(prompt) > 50 {
			prompt = prompt[:47] + "..."
		}

		line := fmt.Sprintf("%s%s  %-7s  %s  %s",
			prefix, formatTime(cp.Timestamp()), statusLabel(item), cp.Type(), prompt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == s.selected && item.Record != nil && item.Record.AnswerText != "" {
			detail := fmt.Sprintf("    answered: %s", item.Record.AnswerText)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func statusLabel(item responses.ReviewItem) string {
	if !item.Answered {
		return "skipped"
	}
	if item.Record != nil && item.Record.SelectedIndex >= 0 {
		if item.Record.IsCorrect {
			return "correct"
		}
		return "wrong"
	}
	return "done"
}

func formatTime(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
