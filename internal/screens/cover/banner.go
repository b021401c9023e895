package cover

import (
	"charm.land/lipgloss/v2"

	"github.com/abaqira/guidebook/internal/ui/theme"
)

const bannerArt = `
  █████  ██████   █████   ██████  ██ ██████   █████
 ██   ██ ██   ██ ██   ██ ██    ██ ██ ██   ██ ██   ██
 ███████ ██████  ███████ ██    ██ ██ ██████  ███████
 ██   ██ ██   ██ ██   ██ ██ ▄▄ ██ ██ ██   ██ ██   ██
 ██   ██ ██████  ██   ██  ██████  ██ ██   ██ ██   ██
                             ▀▀`

const bannerCompact = "A B A Q I R A"

// RenderBanner returns the ABAQIRA banner styled in the accent color.
// Uses a compact fallback for terminals narrower than 56 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
