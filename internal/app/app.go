package app

import (
	"errors"
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abaqira/guidebook/internal/guide"
	"github.com/abaqira/guidebook/internal/imageload"
	"github.com/abaqira/guidebook/internal/navigator"
	"github.com/abaqira/guidebook/internal/questions"
	"github.com/abaqira/guidebook/internal/router"
	"github.com/abaqira/guidebook/internal/screen"
	"github.com/abaqira/guidebook/internal/screens/bank"
	"github.com/abaqira/guidebook/internal/screens/content"
	"github.com/abaqira/guidebook/internal/screens/cover"
	"github.com/abaqira/guidebook/internal/selector"
	"github.com/abaqira/guidebook/internal/ui/components"
	"github.com/abaqira/guidebook/internal/ui/layout"
	"github.com/abaqira/guidebook/internal/ui/theme"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Guide  *guide.Guidebook
	Bank   *questions.Bank
	Loader imageload.Loader
	Logger *zap.Logger
	// Rules overrides the default subtopic rules when non-nil.
	Rules selector.SubtopicRules
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	guide    *guide.Guidebook
	nav      *navigator.Navigator
	router   *router.Router
	viewport viewport.Model
	menu     components.Menu
	logger   *zap.Logger
	width    int
	height   int
}

// newAppModel builds the six guidebook pages in order.
func newAppModel(opts Options) (AppModel, error) {
	if opts.Guide == nil || opts.Bank == nil {
		return AppModel{}, errors.New("app: guide and bank are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rules := opts.Rules
	if rules == nil {
		rules = selector.DefaultRules()
	}

	g := opts.Guide
	sel := selector.New(opts.Bank, rules)
	pages := []screen.Screen{
		cover.New(g.Hero, opts.Loader),
		content.Intro(g),
		content.Rules(g),
		content.Rounds(g),
		content.Penalties(g),
		bank.New(g.Pages[5], g.BankNote, sel, opts.Loader, logger.Named("bank")),
	}

	return AppModel{
		guide:    g,
		nav:      navigator.New(len(pages)),
		router:   router.New(pages),
		viewport: viewport.New(),
		logger:   logger,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case router.GoToPageMsg:
		cmd = m.apply(m.nav.MoveToPage(msg.Page))

	case tea.KeyPressMsg:
		cmd = m.handleKey(msg)

	case tea.MouseWheelMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		cmd = m.router.Update(msg)
	}

	m.syncViewport()
	return m, cmd
}

func (m *AppModel) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, keys.Quit) {
		return tea.Quit
	}

	if m.nav.MenuOpen() {
		switch {
		case key.Matches(msg, keys.Close), key.Matches(msg, keys.Drawer):
			m.nav.CloseMenu()
			return nil
		}
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, keys.Next):
		return m.apply(m.nav.Next())
	case key.Matches(msg, keys.Prev):
		return m.apply(m.nav.Prev())
	case key.Matches(msg, keys.Drawer):
		m.openDrawer()
		return nil
	}
	if page, ok := pageKey(msg.String()); ok && page < m.nav.PageCount() {
		return m.apply(m.nav.MoveToPage(page))
	}

	cmd := m.router.Update(msg)
	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return tea.Batch(cmd, vpCmd)
}

// apply shows the page chosen by the navigator and resets the scroll offset.
func (m *AppModel) apply(move navigator.Move) tea.Cmd {
	if !move.Changed {
		return nil
	}
	m.logger.Debug("page changed",
		zap.Int("from", move.From),
		zap.Int("to", move.To),
		zap.Int("direction", int(move.Direction)))

	cmd := m.router.Show(move.To, int(move.Direction))
	if move.ScrollToTop {
		m.syncViewport()
		m.viewport.GotoTop()
	}
	return cmd
}

func (m *AppModel) openDrawer() {
	items := make([]components.MenuItem, len(m.guide.Pages))
	for i, label := range m.guide.Pages {
		page := i
		items[i] = components.MenuItem{
			Label: label,
			Badge: fmt.Sprintf("%d", i+1),
			Action: func() tea.Cmd {
				return func() tea.Msg { return router.GoToPageMsg{Page: page} }
			},
		}
	}
	m.menu = components.NewMenu(items, m.nav.Current())
	m.nav.OpenMenu()
}

// chrome renders the header and footer for the current state.
func (m AppModel) chrome() (header, footer string) {
	header = layout.RenderHeader(m.guide.Brand, m.nav.Current(), m.nav.PageCount(), m.nav.Progress(), m.width)
	if !layout.IsCompactWidth(m.width) {
		header += "\n" + layout.RenderPageNav(m.guide.Pages, m.nav.Current(), m.width)
	}

	prev := components.NewButton(keys.Prev.Help().Desc, keys.Prev.Help().Key, !m.nav.CanPrev())
	next := components.NewButton(keys.Next.Help().Desc, keys.Next.Help().Key, !m.nav.CanNext())
	footer = layout.RenderFooter(prev, next, m.keyHints(), m.width)
	return header, footer
}

func (m AppModel) keyHints() []layout.KeyHint {
	if m.nav.MenuOpen() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "تنقل"},
			{Key: "Enter", Description: "اختيار"},
			{Key: keys.Close.Help().Key, Description: keys.Close.Help().Desc},
		}
	}
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	return append(hints,
		layout.KeyHint{Key: keys.Drawer.Help().Key, Description: keys.Drawer.Help().Desc},
		layout.KeyHint{Key: keys.Quit.Help().Key, Description: keys.Quit.Help().Desc},
	)
}

func (m AppModel) contentHeight() int {
	header, footer := m.chrome()
	return max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// syncViewport sizes the viewport to the frame and refreshes its content from
// the active page.
func (m *AppModel) syncViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.contentHeight()
	m.viewport.SetWidth(m.width)
	m.viewport.SetHeight(h)
	m.viewport.SetContent(m.router.View(m.width, h))
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header, footer := m.chrome()
	body := m.viewport.View()
	if m.nav.MenuOpen() {
		body = m.renderDrawer(m.contentHeight())
	}

	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

func (m AppModel) renderDrawer(height int) string {
	w := min(40, m.width-4)
	box := theme.Card.
		BorderForeground(theme.Accent).
		Render(theme.Title.Render("الصفحات") + "\n\n" + m.menu.View(w))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	_, err = p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
