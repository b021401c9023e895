package bank

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abaqira/guidebook/internal/imageload"
	"github.com/abaqira/guidebook/internal/screen"
	"github.com/abaqira/guidebook/internal/selector"
	"github.com/abaqira/guidebook/internal/ui/components"
	"github.com/abaqira/guidebook/internal/ui/layout"
)

// BankScreen is the question bank page. It owns the category/subtopic
// selection and one card per visible question.
type BankScreen struct {
	title  string
	note   string
	sel    *selector.Selector
	loader imageload.Loader
	logger *zap.Logger
	cards  []components.QuestionCard
}

var _ screen.Screen = (*BankScreen)(nil)
var _ screen.KeyHintProvider = (*BankScreen)(nil)

// New creates the bank page over sel. loader resolves question images.
func New(title, note string, sel *selector.Selector, loader imageload.Loader, logger *zap.Logger) *BankScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BankScreen{
		title:  title,
		note:   note,
		sel:    sel,
		loader: loader,
		logger: logger,
	}
}

func (b *BankScreen) Init() tea.Cmd {
	return b.rebuild()
}

func (b *BankScreen) Title() string {
	return b.title
}

// Selector exposes the selection state, mainly for tests and the CLI.
func (b *BankScreen) Selector() *selector.Selector {
	return b.sel
}

// Cards returns the cards for the visible questions.
func (b *BankScreen) Cards() []components.QuestionCard {
	return b.cards
}

func (b *BankScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: keys.NextCategory.Help().Key, Description: keys.NextCategory.Help().Desc},
	}
	if b.sel.HasSubtopics() {
		hints = append(hints, layout.KeyHint{Key: "[ ]", Description: b.subtopicLabel()})
	}
	return hints
}

func (b *BankScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.NextCategory):
			b.sel.NextCategory()
		case key.Matches(msg, keys.PrevCategory):
			b.sel.PrevCategory()
		case key.Matches(msg, keys.NextSubtopic):
			b.sel.NextSubtopic()
		case key.Matches(msg, keys.PrevSubtopic):
			b.sel.PrevSubtopic()
		default:
			return b, nil
		}
		b.logger.Debug("selection changed",
			zap.String("category", b.sel.CategoryID()),
			zap.String("subtopic", b.sel.Subtopic()))
		return b, b.rebuild()

	case imageload.LoadedMsg:
		if c := b.card(msg.Key); c != nil && c.Image.Src == msg.Src {
			c.Image.Succeed()
		}
		return b, nil

	case imageload.FailedMsg:
		return b, b.handleImageFailure(msg)
	}
	return b, nil
}

// subtopicLabel names the subtopic choices after the selected category.
func (b *BankScreen) subtopicLabel() string {
	cat, _ := b.sel.Selected()
	return "اختيارات فقرة " + cat.Title
}

// rebuild recreates the cards for the visible questions and starts loading
// their images.
func (b *BankScreen) rebuild() tea.Cmd {
	cat, ok := b.sel.Selected()
	if !ok {
		b.cards = nil
		return nil
	}

	visible := b.sel.Visible()
	b.cards = make([]components.QuestionCard, len(visible))

	var cmds []tea.Cmd
	for i, item := range visible {
		k := fmt.Sprintf("%s/%s/%d", cat.ID, b.sel.Subtopic(), i)
		b.cards[i] = components.NewQuestionCard(k, i, item)
		if item.HasImage() {
			cmds = append(cmds, imageload.LoadCmd(b.loader, k, item.Image))
		}
	}
	return tea.Batch(cmds...)
}

func (b *BankScreen) handleImageFailure(msg imageload.FailedMsg) tea.Cmd {
	c := b.card(msg.Key)
	if c == nil || c.Image.Src != msg.Src {
		return nil
	}
	if c.Image.Fail() {
		return imageload.LoadCmd(b.loader, c.Key, c.Image.Src)
	}
	b.logger.Warn("question image unavailable",
		zap.String("card", c.Key),
		zap.String("src", c.Image.Src),
		zap.Error(msg.Err))
	return nil
}

func (b *BankScreen) card(k string) *components.QuestionCard {
	for i := range b.cards {
		if b.cards[i].Key == k {
			return &b.cards[i]
		}
	}
	return nil
}
