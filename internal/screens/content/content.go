package content

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abaqira/guidebook/internal/guide"
	"github.com/abaqira/guidebook/internal/screen"
	"github.com/abaqira/guidebook/internal/ui/theme"
)

// Block is one titled card on a content page. Exactly one of Paragraphs,
// Bullets or Chips is usually set.
type Block struct {
	Title      string
	Paragraphs []string
	Bullets    []string
	Chips      []string
	Rows       [][2]string
}

// ContentScreen renders a static guidebook page made of titled blocks.
type ContentScreen struct {
	title  string
	blocks []Block
}

var _ screen.Screen = (*ContentScreen)(nil)

// New creates a ContentScreen with the given page title and blocks.
func New(title string, blocks ...Block) *ContentScreen {
	return &ContentScreen{title: title, blocks: blocks}
}

// Intro builds the guide introduction page: paragraphs and table of contents.
func Intro(g *guide.Guidebook) *ContentScreen {
	rows := make([][2]string, 0, len(g.TOC))
	for _, item := range g.TOC {
		rows = append(rows, [2]string{item.Topic, fmt.Sprintf("ص %d", item.Page)})
	}
	return New(g.Pages[1],
		Block{Title: "مقدمة الدليل", Paragraphs: g.Intro},
		Block{Title: "فهرس الموضوعات", Rows: rows},
	)
}

// Rules builds the organizational rules page.
func Rules(g *guide.Guidebook) *ContentScreen {
	return New(g.Pages[2], Block{Title: "اللائحة التنظيمية للمسابقة", Bullets: g.Rules})
}

// Rounds builds the competition system page: rounds, then explanations.
func Rounds(g *guide.Guidebook) *ContentScreen {
	blocks := []Block{{Title: "نظام المسابقة"}}
	for _, r := range g.Rounds {
		blocks = append(blocks, Block{Title: r.Title, Chips: r.Items})
	}
	blocks = append(blocks, Block{Title: "شرح بنود الفقرات"})
	for _, s := range g.Explanations {
		blocks = append(blocks, Block{Title: s.Title, Bullets: s.Points})
	}
	return New(g.Pages[3], blocks...)
}

// Penalties builds the penalty kicks and speed questions page.
func Penalties(g *guide.Guidebook) *ContentScreen {
	blocks := []Block{{Title: "ضربات الجزاء + أسئلة السرعة"}}
	for _, s := range g.Penalties {
		blocks = append(blocks, Block{Title: s.Title, Bullets: s.Points})
	}
	return New(g.Pages[4], blocks...)
}

func (c *ContentScreen) Init() tea.Cmd {
	return nil
}

func (c *ContentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return c, nil
}

func (c *ContentScreen) View(width, height int) string {
	cw := min(width-2, 96)
	if cw < 20 {
		cw = 20
	}

	rendered := make([]string, 0, len(c.blocks))
	for _, b := range c.blocks {
		rendered = append(rendered, renderBlock(b, cw))
	}

	body := strings.Join(rendered, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (c *ContentScreen) Title() string {
	return c.title
}

func renderBlock(b Block, width int) string {
	inner := width - 6
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(inner)

	lines := []string{theme.Title.Render(b.Title)}

	for _, p := range b.Paragraphs {
		lines = append(lines, text.Render(p), "")
	}
	for _, item := range b.Bullets {
		lines = append(lines, text.Render("• "+item))
	}
	if len(b.Chips) > 0 {
		chips := make([]string, len(b.Chips))
		for i, chip := range b.Chips {
			chips[i] = theme.Chip.Render(chip)
		}
		lines = append(lines, strings.Join(chips, " "))
	}
	for _, row := range b.Rows {
		gap := inner - lipgloss.Width(row[0]) - lipgloss.Width(row[1])
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, row[0]+strings.Repeat("·", gap)+theme.Hint.Render(row[1]))
	}

	// Header-only blocks act as section titles.
	if len(lines) == 1 {
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Underline(true).Padding(1, 1, 0).Render(b.Title)
	}
	return theme.Card.Width(width).Render(strings.TrimRight(strings.Join(lines, "\n"), "\n"))
}
