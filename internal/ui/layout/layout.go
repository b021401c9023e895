package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abaqira/guidebook/internal/ui/components"
	"github.com/abaqira/guidebook/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	CompactWidthThreshold = 100
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
// Compact terminals hide the page strip; the drawer replaces it.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the brand, the stage counter and the progress bar.
func RenderHeader(brand string, page, pageCount int, progress float64, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("  " + brand)

	stage := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("المرحلة %d / %d", page+1, pageCount))

	innerWidth := width - 4 // border + padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	barWidth := innerWidth - lipgloss.Width(left) - lipgloss.Width(stage) - 4
	if barWidth > 30 {
		barWidth = 30
	}
	percent := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d%%", int(progress*100)))
	bar := components.NewStageBar(page, pageCount, barWidth-lipgloss.Width(percent)-1).View()
	right := stage + "  " + bar + " " + percent

	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + right

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderPageNav renders the page strip with the active page highlighted.
func RenderPageNav(labels []string, active, width int) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		text := fmt.Sprintf("%d %s", i+1, label)
		if i == active {
			parts = append(parts, theme.TabActive.Render(text))
		} else {
			parts = append(parts, theme.TabInactive.Render(text))
		}
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(parts, " "))
}

// RenderFooter renders the previous/next controls and key hints.
func RenderFooter(prev, next components.Button, hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	buttons := prev.View() + " " + next.View()
	hintLine := strings.Join(parts, "   ")

	innerWidth := width - 4
	gap := innerWidth - lipgloss.Width(buttons) - lipgloss.Width(hintLine)
	var content string
	if gap >= 2 {
		content = buttons + strings.Repeat(" ", gap) + hintLine
	} else {
		content = buttons + "\n" + hintLine
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
