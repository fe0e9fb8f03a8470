package player

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lecto/internal/checkpoint"
	"github.com/abhisek/lecto/internal/tutor"
	"github.com/abhisek/lecto/internal/ui/components"
	"github.com/abhisek/lecto/internal/ui/theme"
)

func (p *PlayerScreen) View(width, height int) string {
	if active := p.sched.Active(); active != nil || p.feedback != nil {
		return p.renderCheckpointView(width, height)
	}

	var b strings.Builder
	b.WriteString(p.renderPlaybackBar(width))
	b.WriteString("\n")

	if banner := p.renderBanner(width); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}

	if p.panelOpen {
		b.WriteString(p.renderTutorPanel(width, height))
	} else {
		b.WriteString(p.renderTabs(width))
		b.WriteString("\n")
		b.WriteString(p.renderTabContent(width, height))
	}

	return b.String()
}

// renderPlaybackBar draws the transport state line and the seek bar.
func (p *PlayerScreen) renderPlaybackBar(width int) string {
	var b strings.Builder

	state := "▶ playing"
	stateStyle := lipgloss.NewStyle().Foreground(theme.Success)
	if !p.clock.Playing() {
		state = "⏸ paused"
		stateStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	current := p.clock.CurrentTime()
	left := stateStyle.Render("  " + state)
	right := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s / %s  %.2gx", formatTime(current), formatTime(p.lec.DurationSeconds), p.clock.Rate()))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")

	percent := 0.0
	if p.lec.DurationSeconds > 0 {
		percent = current / p.lec.DurationSeconds
	}
	bar := components.NewProgressBar("", percent, false, min(width-8, 72))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	return b.String()
}

// renderBanner picks the single highest-priority banner line.
func (p *PlayerScreen) renderBanner(width int) string {
	centered := func(text string, style lipgloss.Style) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	if n := p.sched.Nudged(); n != nil {
		remaining := int(time.Until(n.Deadline).Seconds())
		if remaining < 0 {
			remaining = 0
		}
		text := fmt.Sprintf("Checkpoint: %s  [Enter] open  [D] dismiss  (%ds)",
			truncate(n.Checkpoint.Prompt(), 40), remaining)
		return centered(text, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true))
	}
	if p.strug != nil {
		text := fmt.Sprintf("Finding this part tricky? Replay from %s?  [Y] yes  [N] no",
			formatTime(p.strug.Section))
		return centered(text, lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true))
	}
	if p.announce != "" {
		return centered(p.announce, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true))
	}
	if p.tutorNote != "" {
		return centered(p.tutorNote, lipgloss.NewStyle().Foreground(theme.Error))
	}
	return ""
}

func (p *PlayerScreen) renderTabs(width int) string {
	names := []string{"1 Transcript", "2 Checkpoints", "3 Notes"}
	parts := make([]string, len(names))
	for i, name := range names {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if tabID(i) == p.tab {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		parts[i] = style.Render(name)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "   "))
}

func (p *PlayerScreen) renderTabContent(width, height int) string {
	switch p.tab {
	case tabCheckpoints:
		return p.renderCheckpointsTab(width)
	case tabNotes:
		return p.renderNotesTab(width)
	default:
		return p.renderTranscriptTab(width, height)
	}
}

// renderTranscriptTab shows the transcript window around the playhead,
// highlighting the line currently being spoken.
func (p *PlayerScreen) renderTranscriptTab(width, height int) string {
	maxLines := height - 8
	if maxLines < 3 {
		maxLines = 3
	}
	current := p.clock.CurrentTime()
	lines := p.lec.TranscriptWindow(current, 45, maxLines)
	if len(lines) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n  No transcript for this lecture.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range lines {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if current >= line.Start && current < line.End {
			style = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		}
		text := fmt.Sprintf("%s  %s", formatTime(line.Start), truncate(line.Text, width-14))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)))
		b.WriteString("\n")
	}
	return b.String()
}

func (p *PlayerScreen) renderCheckpointsTab(width int) string {
	if len(p.cps) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n  This lecture has no checkpoints.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, cp := range p.cps {
		marker := "○"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if p.sched.IsCompleted(cp.Key) {
			marker = "●"
			style = lipgloss.NewStyle().Foreground(theme.Success)
			if rec, ok := p.respStore.Get(cp.Key); ok && rec.SelectedIndex >= 0 && !rec.IsCorrect {
				style = lipgloss.NewStyle().Foreground(theme.Error)
			}
		}
		line := fmt.Sprintf("%s %s  %-12s  %s",
			marker, formatTime(cp.Timestamp()), cp.Type(), truncate(cp.Prompt(), width-30))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderNotesTab shows the lecture's concept outline.
func (p *PlayerScreen) renderNotesTab(width int) string {
	if len(p.lec.Concepts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n  No concept notes for this lecture.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, c := range p.lec.Concepts {
		name := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("%s  %s", formatTime(c.Timestamp), c.Name))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, name))
		b.WriteString("\n")
		if c.Description != "" {
			desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(width-12, 66)).
				Render(c.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (p *PlayerScreen) renderTutorPanel(width, height int) string {
	var b strings.Builder

	header := "Tutor"
	if p.session != nil {
		switch {
		case p.session.State() == tutor.StateReconnecting:
			header = "Tutor (reconnecting" + typingDots() + ")"
		case p.tutorBusy:
			header = "Tutor (thinking" + typingDots() + ")"
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(header)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 72)))))
	b.WriteString("\n")

	maxMsgs := height - 10
	if maxMsgs < 2 {
		maxMsgs = 2
	}
	msgs := p.chat
	if len(msgs) > maxMsgs {
		msgs = msgs[len(msgs)-maxMsgs:]
	}
	if len(msgs) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Ask anything about the lecture."))
		b.WriteString("\n")
	}
	for _, m := range msgs {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "tutor: "
		if m.Role == "student" {
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
			prefix = "you:   "
		}
		text := style.Width(min(width-12, 70)).Render(prefix + m.Content)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "> "+p.chatInput.View()))
	return b.String()
}

// renderCheckpointView draws the engaged checkpoint overlay, or the
// feedback for the answer just given.
func (p *PlayerScreen) renderCheckpointView(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	var cp checkpoint.Checkpoint
	if p.feedback != nil {
		cp = p.feedbackCP
	} else if active := p.sched.Active(); active != nil {
		cp = active.Checkpoint
	}

	label := checkpointLabel(cp.Type())
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Bold(true).
		Render(label))
	b.WriteString("\n\n")

	if p.feedback != nil {
		b.WriteString(p.renderFeedback(width, cp))
		return b.String()
	}

	if p.useText {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
			Render(cp.Prompt()))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.textIn.View()))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.opts.View()))
	}

	return b.String()
}

func (p *PlayerScreen) renderFeedback(width int, cp checkpoint.Checkpoint) string {
	var b strings.Builder
	out := p.feedback

	switch {
	case out.SelectedIndex < 0:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Success).Bold(true).
			Render("Noted!"))
	case out.IsCorrect:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Success).Bold(true).
			Render("Correct!"))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n\n")

	if len(cp.Options) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.opts.View()))
		b.WriteString("\n")
	}

	if out.SelectedIndex >= 0 && !out.IsCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("[W] rewatch this section"))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func checkpointLabel(typ checkpoint.Type) string {
	switch typ {
	case checkpoint.TypeQuickQuiz:
		return "Quick Quiz"
	case checkpoint.TypeReflection:
		return "Reflection"
	case checkpoint.TypePrediction:
		return "Prediction"
	case checkpoint.TypeApplication:
		return "Application"
	default:
		return "Checkpoint"
	}
}

// typingDots animates an ellipsis; the 250ms play tick keeps it moving.
func typingDots() string {
	n := int(time.Now().UnixMilli()/400)%3 + 1
	return strings.Repeat(".", n)
}

func truncate(s string, n int) string {
	if n < 4 || len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
