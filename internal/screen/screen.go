// Package screen defines the contract between the router and the guidebook
// pages.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abaqira/guidebook/internal/ui/layout"
)

// Screen is one guidebook page. The router owns the pages for the whole run,
// so a page keeps its state (selection, image loads) when it is left.
type Screen interface {
	Init() tea.Cmd

	// Update receives key presses only while the page is shown, and every
	// other message always.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the page body at the given size. Taller output is scrolled
	// by the app.
	View(width, height int) string

	// Title is the page label used in the drawer and page strip.
	Title() string
}

// KeyHintProvider is implemented by pages that add their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
