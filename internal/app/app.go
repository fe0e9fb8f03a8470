package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lecto/internal/llm"
	"github.com/abhisek/lecto/internal/router"
	"github.com/abhisek/lecto/internal/screen"
	"github.com/abhisek/lecto/internal/screens/home"
	"github.com/abhisek/lecto/internal/store"
	"github.com/abhisek/lecto/internal/ui/layout"
)

// Options wires the app's external collaborators. Nil repos and provider
// are allowed; the affected features degrade gracefully.
type Options struct {
	LibraryDir string
	AppVersion string
	UserID     string
	EventRepo  store.EventRepo
	SnapRepo   store.SnapshotRepo
	Provider   llm.Provider
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		LibraryDir: opts.LibraryDir,
		AppVersion: opts.AppVersion,
		UserID:     opts.UserID,
		EventRepo:  opts.EventRepo,
		SnapRepo:   opts.SnapRepo,
		Provider:   opts.Provider,
	})
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

// Update forwards everything except ctrl+c to the active screen. Esc is
// deliberately not intercepted here: screens own their exit so the player
// can flush end-of-session persistence before popping.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
