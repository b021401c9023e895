package cover

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abaqira/guidebook/internal/guide"
	"github.com/abaqira/guidebook/internal/imageload"
	"github.com/abaqira/guidebook/internal/router"
	"github.com/abaqira/guidebook/internal/screen"
	"github.com/abaqira/guidebook/internal/ui/components"
	"github.com/abaqira/guidebook/internal/ui/layout"
	"github.com/abaqira/guidebook/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 300 * time.Millisecond
	phase2End    = 900 * time.Millisecond
	totalDur     = 1500 * time.Millisecond

	imageKey = "cover"
)

// sparkle frames cycle around the banner
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// CoverScreen is the welcome page: season banner, cover image and the start
// button that opens the guide introduction.
type CoverScreen struct {
	hero      guide.Hero
	loader    imageload.Loader
	image     imageload.State
	elapsed   time.Duration
	tickCount int
}

var _ screen.Screen = (*CoverScreen)(nil)

// New creates the cover page. loader resolves the cover image.
func New(hero guide.Hero, loader imageload.Loader) *CoverScreen {
	return &CoverScreen{
		hero:   hero,
		loader: loader,
		image:  imageload.NewState(hero.Cover),
	}
}

func (c *CoverScreen) Title() string {
	return "الترحيب"
}

func (c *CoverScreen) Init() tea.Cmd {
	return tea.Batch(
		c.nextTick(),
		imageload.LoadCmd(c.loader, imageKey, c.image.Src),
	)
}

func (c *CoverScreen) nextTick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (c *CoverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if c.elapsed < totalDur {
			c.elapsed += tickInterval
		}
		c.tickCount++
		return c, c.nextTick()

	case imageload.LoadedMsg:
		if msg.Key == imageKey && msg.Src == c.image.Src {
			c.image.Succeed()
		}
		return c, nil

	case imageload.FailedMsg:
		if msg.Key != imageKey || msg.Src != c.image.Src {
			return c, nil
		}
		if c.image.Fail() {
			return c, imageload.LoadCmd(c.loader, imageKey, c.image.Src)
		}
		return c, nil

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			c.elapsed = totalDur
			return c, func() tea.Msg { return router.GoToPageMsg{Page: 1} }
		}
		// Any other key skips the intro animation.
		c.elapsed = totalDur
		return c, nil
	}

	return c, nil
}

// KeyHints adds the start key to the footer.
func (c *CoverScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: c.hero.Start}}
}

func (c *CoverScreen) View(width, height int) string {
	var sections []string

	kicker := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(c.hero.Kicker)
	sections = append(sections, kicker)

	banner := RenderBanner(width)
	if c.elapsed >= phase1End {
		sparkle := sparkleFrames[c.tickCount%len(sparkleFrames)]
		accent := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		secondary := lipgloss.NewStyle().Foreground(theme.Primary).Render(sparkle)

		lines := strings.Split(banner, "\n")
		for i := range lines {
			if i%2 == 1 {
				lines[i] = accent + " " + lines[i] + " " + secondary
			}
		}
		banner = strings.Join(lines, "\n")
	}
	sections = append(sections, banner)

	if c.elapsed >= phase2End {
		sections = append(sections,
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(min(width, 70)).Align(lipgloss.Center).Render(c.hero.Title),
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(c.hero.Year),
			"",
			c.coverLine(),
			"",
			components.NewButton(c.hero.Start, "Enter", false).View(),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (c *CoverScreen) coverLine() string {
	switch {
	case c.image.Failed:
		return lipgloss.NewStyle().Foreground(theme.Error).Render(components.ImageFallback)
	case c.image.Loaded:
		return theme.Hint.Render("🖼  " + c.hero.CoverAlt)
	default:
		return theme.Hint.Render("… " + c.hero.CoverAlt)
	}
}
