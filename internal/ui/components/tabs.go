package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abaqira/guidebook/internal/ui/theme"
)

// RenderTabs lays tabs out left to right, wrapping onto new rows when a row
// would exceed width.
func RenderTabs(labels []string, active, width int) string {
	var rows []string
	var row string
	for i, label := range labels {
		style := theme.TabInactive
		if i == active {
			style = theme.TabActive
		}
		tab := style.Render(label)

		if row != "" && lipgloss.Width(row)+1+lipgloss.Width(tab) > width {
			rows = append(rows, row)
			row = ""
		}
		if row != "" {
			row += " "
		}
		row += tab
	}
	if row != "" {
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}
