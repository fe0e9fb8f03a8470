package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lecto/internal/lecture"
	"github.com/abhisek/lecto/internal/llm"
	"github.com/abhisek/lecto/internal/router"
	"github.com/abhisek/lecto/internal/screen"
	"github.com/abhisek/lecto/internal/screens/history"
	"github.com/abhisek/lecto/internal/screens/player"
	"github.com/abhisek/lecto/internal/store"
	"github.com/abhisek/lecto/internal/ui/components"
	"github.com/abhisek/lecto/internal/ui/layout"
	"github.com/abhisek/lecto/internal/ui/theme"
)

type libraryLoadedMsg struct {
	Lectures []*lecture.Lecture
	Resume   map[string]store.ResumePosition
	Err      error
}

// Deps holds the collaborators a viewing session needs. Everything except
// LibraryDir may be nil; missing pieces degrade features rather than
// blocking the screen.
type Deps struct {
	LibraryDir string
	AppVersion string
	UserID     string
	EventRepo  store.EventRepo
	SnapRepo   store.SnapshotRepo
	Provider   llm.Provider
}

// HomeScreen is the lecture library: pick a lecture to watch, continue
// where you left off, or look at your history.
type HomeScreen struct {
	deps     Deps
	lectures []*lecture.Lecture
	resume   map[string]store.ResumePosition
	menu     components.Menu
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the library screen. The library itself loads asynchronously
// in Init.
func New(deps Deps) *HomeScreen {
	return &HomeScreen{deps: deps, resume: make(map[string]store.ResumePosition)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		lectures, err := lecture.LoadLibrary(h.deps.LibraryDir, h.deps.AppVersion)
		if err != nil {
			return libraryLoadedMsg{Err: err}
		}

		resume := make(map[string]store.ResumePosition)
		if h.deps.SnapRepo != nil {
			if snap, err := h.deps.SnapRepo.Latest(context.Background()); err == nil && snap != nil {
				resume = snap.Data.Positions
			}
		}
		return libraryLoadedMsg{Lectures: lectures, Resume: resume}
	}
}

func (h *HomeScreen) Title() string {
	return "Library"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Watch"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case libraryLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
		} else {
			h.lectures = msg.Lectures
			if msg.Resume != nil {
				h.resume = msg.Resume
			}
			h.menu = components.NewMenu(h.buildMenu())
		}
		h.loaded = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "q" {
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) buildMenu() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(h.lectures)+2)

	for _, lec := range h.lectures {
		lec := lec
		items = append(items, components.MenuItem{
			Label: h.lectureLabel(lec),
			Action: func() tea.Cmd {
				startAt := h.resume[lec.ID].VideoTime
				if startAt >= lec.DurationSeconds {
					startAt = 0 // finished; start over
				}
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: player.New(player.Deps{
						Lecture:   lec,
						UserID:    h.deps.UserID,
						EventRepo: h.deps.EventRepo,
						SnapRepo:  h.deps.SnapRepo,
						Provider:  h.deps.Provider,
						StartAt:   startAt,
					})}
				}
			},
		})
	}

	items = append(items, components.MenuItem{
		Label:    "HISTORY",
		Disabled: h.deps.EventRepo == nil,
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.deps.EventRepo, h.deps.UserID, h.titlesByID())}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label:  "QUIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return items
}

func (h *HomeScreen) lectureLabel(lec *lecture.Lecture) string {
	mins := int(lec.DurationSeconds) / 60
	label := fmt.Sprintf("%s  (%dm, %d checkpoints)", lec.Title, mins, len(lec.Checkpoints))
	if pos, ok := h.resume[lec.ID]; ok && pos.VideoTime > 0 && pos.VideoTime < lec.DurationSeconds {
		label += fmt.Sprintf("  · resume %d:%02d", int(pos.VideoTime)/60, int(pos.VideoTime)%60)
	}
	return label
}

func (h *HomeScreen) titlesByID() map[string]string {
	titles := make(map[string]string, len(h.lectures))
	for _, lec := range h.lectures {
		titles[lec.ID] = lec.Title
	}
	return titles
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nCould not load the library:\n%s", h.errMsg))
	}
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading library...")
	}

	var sections []string
	sections = append(sections, renderBanner(width))

	if len(h.lectures) == 0 {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No lectures found. Drop lecture packs into the library directory."))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return "\n" + strings.Join(sections, "\n\n")
}
