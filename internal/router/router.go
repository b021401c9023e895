package router

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abaqira/guidebook/internal/screen"
)

const (
	transitionFrames   = 6
	transitionInterval = 30 * time.Millisecond
)

// GoToPageMsg asks the app to move to Page through the navigator.
type GoToPageMsg struct {
	Page int
}

// transitionTickMsg advances the slide transition identified by seq.
type transitionTickMsg struct {
	seq int
}

// Router holds the fixed set of page screens, forwards messages to them and
// animates the switch between pages.
type Router struct {
	pages  []screen.Screen
	active int

	// slide transition state
	frame     int
	direction int
	seq       int
}

// New creates a Router over pages with the first one active.
func New(pages []screen.Screen) *Router {
	return &Router{pages: pages}
}

// Init initializes every page.
func (r *Router) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for _, p := range r.pages {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

// Show activates page index and starts a slide in the given direction
// (+1 enters from the right, -1 from the left). Out-of-range indexes are
// ignored.
func (r *Router) Show(index, direction int) tea.Cmd {
	if index < 0 || index >= len(r.pages) || index == r.active {
		return nil
	}
	r.active = index
	r.direction = direction
	r.frame = transitionFrames
	r.seq++
	return r.tick()
}

func (r *Router) tick() tea.Cmd {
	seq := r.seq
	return tea.Tick(transitionInterval, func(time.Time) tea.Msg {
		return transitionTickMsg{seq: seq}
	})
}

// Active returns the page being shown.
func (r *Router) Active() screen.Screen {
	if len(r.pages) == 0 {
		return nil
	}
	return r.pages[r.active]
}

// ActiveIndex returns the index of the page being shown.
func (r *Router) ActiveIndex() int {
	return r.active
}

// Len returns the number of pages.
func (r *Router) Len() int {
	return len(r.pages)
}

// Transitioning reports whether a slide is in progress.
func (r *Router) Transitioning() bool {
	return r.frame > 0
}

// Update advances transitions, sends key presses to the active page and every
// other message to all pages, so results of background work (image loads)
// reach their page even after it was left.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case transitionTickMsg:
		if msg.seq != r.seq || r.frame == 0 {
			return nil
		}
		r.frame--
		if r.frame == 0 {
			return nil
		}
		return r.tick()

	case tea.KeyPressMsg:
		active := r.Active()
		if active == nil {
			return nil
		}
		updated, cmd := active.Update(msg)
		r.pages[r.active] = updated
		return cmd
	}

	var cmds []tea.Cmd
	for i, p := range r.pages {
		updated, cmd := p.Update(msg)
		r.pages[i] = updated
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View renders the active page, shifted while a slide is in progress.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	content := active.View(width, height)
	if r.frame == 0 {
		return content
	}

	shift := width * r.frame / (transitionFrames * 3)
	if r.direction >= 0 {
		return lipgloss.NewStyle().PaddingLeft(shift).MaxWidth(width).Render(content)
	}
	return lipgloss.NewStyle().MaxWidth(max(width-shift, 1)).Render(content)
}
