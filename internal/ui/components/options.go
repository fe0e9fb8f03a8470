package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lecto/internal/ui/theme"
)

// OptionList is the checkpoint option selector. Unlike a quiz widget it
// does not know the correct answer upfront; the outcome is set after the
// answer resolver has run.
type OptionList struct {
	Prompt       string
	Options      []string
	Selected     int
	Submitted    bool
	ChosenIndex  int
	CorrectIndex int // -1 until the outcome is known
}

// NewOptionList creates an option selector for a checkpoint.
func NewOptionList(prompt string, options []string) OptionList {
	return OptionList{
		Prompt:       prompt,
		Options:      options,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Submitted {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "enter":
		o.Submitted = true
		o.ChosenIndex = o.Selected
	}

	return o, nil
}

// SetOutcome records the resolved answer for feedback rendering.
func (o *OptionList) SetOutcome(chosen, correct int) {
	o.Submitted = true
	o.ChosenIndex = chosen
	o.CorrectIndex = correct
}

// View renders the option list.
func (o OptionList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(o.Prompt) + "\n\n"

	for i, opt := range o.Options {
		label := optionLabel(i)
		prefix := "  "
		if i == o.Selected && !o.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if o.Submitted && o.CorrectIndex >= 0 {
			switch {
			case i == o.CorrectIndex:
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			case i == o.ChosenIndex:
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		if i == o.Selected && !o.Submitted {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

func optionLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%d", i+1)
}
