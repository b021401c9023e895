package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abaqira/guidebook/internal/ui/theme"
)

// StageBar shows the guidebook pages as segments, filled up to the current
// one.
type StageBar struct {
	Stage  int // zero-based current page
	Stages int
	Width  int
}

// NewStageBar creates a stage bar for stage out of stages.
func NewStageBar(stage, stages, width int) StageBar {
	return StageBar{Stage: stage, Stages: stages, Width: width}
}

// View renders one segment per stage separated by a single space.
func (b StageBar) View() string {
	if b.Stages <= 0 {
		return ""
	}
	seg := max((b.Width-(b.Stages-1))/b.Stages, 1)

	done := lipgloss.NewStyle().Background(theme.Accent)
	todo := lipgloss.NewStyle().Background(theme.Border)

	parts := make([]string, b.Stages)
	for i := range parts {
		style := todo
		if i <= b.Stage {
			style = done
		}
		parts[i] = style.Render(strings.Repeat(" ", seg))
	}
	return strings.Join(parts, " ")
}
