package bank

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abaqira/guidebook/internal/ui/components"
	"github.com/abaqira/guidebook/internal/ui/theme"
)

func (b *BankScreen) View(width, height int) string {
	cw := min(width-2, 110)
	if cw < 30 {
		cw = 30
	}

	sections := []string{
		theme.Title.Render("بنك الأسئلة"),
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render(b.note),
		"",
		b.renderCategoryTabs(cw),
	}

	if b.sel.HasSubtopics() {
		sections = append(sections,
			"",
			theme.Subtitle.Render(b.subtopicLabel()),
			b.renderSubtopicTabs(cw),
		)
	}

	cat, ok := b.sel.Selected()
	if ok {
		sections = append(sections,
			"",
			theme.Title.Render(cat.Title),
			lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw).Render(cat.Description),
			"",
		)
		if len(b.cards) == 0 {
			sections = append(sections, theme.Hint.Render("لا توجد أسئلة لهذا الاختيار."))
		}
		for _, c := range b.cards {
			sections = append(sections, c.View(cw))
		}
		sections = append(sections, theme.Hint.Render(fmt.Sprintf("%d سؤال", len(b.cards))))
	}

	body := strings.Join(sections, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (b *BankScreen) renderCategoryTabs(width int) string {
	cats := b.sel.Categories()
	labels := make([]string, len(cats))
	active := -1
	selected, _ := b.sel.Selected()
	for i, c := range cats {
		labels[i] = c.Title
		if c.ID == selected.ID {
			active = i
		}
	}
	return components.RenderTabs(labels, active, width)
}

func (b *BankScreen) renderSubtopicTabs(width int) string {
	topics := b.sel.Subtopics()
	return components.RenderTabs(topics, slices.Index(topics, b.sel.Subtopic()), width)
}
