package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abaqira/guidebook/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label  string
	Badge  string
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu. Current marks the item that is already
// active elsewhere (the page being shown); Selected is the cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
	Current  int
}

// NewMenu creates a new menu with the cursor on current.
func NewMenu(items []MenuItem, current int) Menu {
	if current < 0 || current >= len(items) {
		current = 0
	}
	return Menu{
		Items:    items,
		Selected: current,
		Current:  current,
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		if item := m.Items[m.Selected]; item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View(width int) string {
	lines := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		marker := "   "
		if i == m.Selected {
			marker = " ▸ "
		}

		style := theme.Unselected
		if i == m.Current {
			style = theme.Selected
		}

		label := style.Render(marker + item.Label)
		badge := lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Badge)
		gap := width - lipgloss.Width(label) - lipgloss.Width(badge) - 1
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, label+strings.Repeat(" ", gap)+badge)
	}
	return strings.Join(lines, "\n")
}
