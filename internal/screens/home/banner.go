package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lecto/internal/ui/theme"
)

const bannerFull = ` ██╗     ███████╗ ██████╗████████╗ ██████╗
 ██║     ██╔════╝██╔════╝╚══██╔══╝██╔═══██╗
 ██║     █████╗  ██║        ██║   ██║   ██║
 ██║     ██╔══╝  ██║        ██║   ██║   ██║
 ███████╗███████╗╚██████╗   ██║   ╚██████╔╝
 ╚══════╝╚══════╝ ╚═════╝   ╚═╝    ╚═════╝`

const bannerCompact = "L · E · C · T · O"

// renderBanner returns the block-letter title, falling back to the compact
// form on narrow terminals.
func renderBanner(width int) string {
	title := bannerFull
	if width < 50 {
		title = bannerCompact
	}
	styled := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, styled)
}
