package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abaqira/guidebook/internal/imageload"
	"github.com/abaqira/guidebook/internal/questions"
	"github.com/abaqira/guidebook/internal/ui/theme"
)

// ImageFallback is shown in place of an image that could not be loaded.
const ImageFallback = "تعذر تحميل الصورة. حدّث الصفحة وحاول مرة أخرى."

// QuestionCard renders one question with its answer and optional image.
type QuestionCard struct {
	Key   string
	Index int
	Item  questions.QuestionItem
	Image imageload.State
}

// NewQuestionCard creates a card; index is zero-based.
func NewQuestionCard(key string, index int, item questions.QuestionItem) QuestionCard {
	return QuestionCard{
		Key:   key,
		Index: index,
		Item:  item,
		Image: imageload.NewState(item.Image),
	}
}

// ImageAlt returns the alt text, defaulting to the question number.
func (c QuestionCard) ImageAlt() string {
	if c.Item.ImageAlt != "" {
		return c.Item.ImageAlt
	}
	return fmt.Sprintf("صورة السؤال %d", c.Index+1)
}

// View renders the card at the given outer width.
func (c QuestionCard) View(width int) string {
	inner := width - 6 // border + padding
	if inner < 10 {
		inner = 10
	}
	wrap := lipgloss.NewStyle().Width(inner)

	index := theme.Chip.Render(fmt.Sprintf("س%d", c.Index+1))
	title := index + " " + theme.Body.Bold(true).Render(c.Item.Question)
	if c.Item.Difficulty != "" {
		title += " " + theme.Hint.Render("("+c.Item.Difficulty+")")
	}

	sections := []string{wrap.Render(title)}

	if c.Item.HasImage() {
		sections = append(sections, wrap.Render(c.imageLine()))
	}

	sections = append(sections, theme.AnswerBox.Width(inner).Render(c.Item.Answer))

	return theme.Card.Width(width).Render(strings.Join(sections, "\n"))
}

func (c QuestionCard) imageLine() string {
	switch {
	case c.Image.Failed:
		return lipgloss.NewStyle().Foreground(theme.Error).Render(ImageFallback)
	case c.Image.Loaded:
		return lipgloss.NewStyle().Foreground(theme.Primary).Render("🖼  "+c.ImageAlt()) +
			" " + theme.Hint.Render(c.Image.Src)
	default:
		return theme.Hint.Render("… " + c.ImageAlt())
	}
}
