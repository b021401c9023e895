// Package navigator owns the guidebook page position and the page drawer.
package navigator

// Direction is the sign of the last page change: +1 forward, -1 backward.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Move describes the outcome of a MoveToPage call.
type Move struct {
	From      int
	To        int
	Direction Direction
	// Changed is false when the target clamped to the current page.
	Changed bool
	// ScrollToTop asks the presentation layer to reset its scroll offset.
	ScrollToTop bool
}

// Navigator holds the current page index, the transition direction and
// whether the page drawer is open. The zero value is not usable; use New.
type Navigator struct {
	pageCount int
	current   int
	direction Direction
	menuOpen  bool
}

// New creates a Navigator over pageCount pages, starting at page 0.
// pageCount below 1 is treated as 1.
func New(pageCount int) *Navigator {
	if pageCount < 1 {
		pageCount = 1
	}
	return &Navigator{
		pageCount: pageCount,
		direction: Forward,
	}
}

// MoveToPage clamps target to [0, PageCount-1] and moves there. Moving to the
// current page only closes the drawer.
func (n *Navigator) MoveToPage(target int) Move {
	safe := clamp(target, 0, n.pageCount-1)
	n.menuOpen = false

	if safe == n.current {
		return Move{From: n.current, To: n.current, Direction: n.direction}
	}

	from := n.current
	if safe > from {
		n.direction = Forward
	} else {
		n.direction = Backward
	}
	n.current = safe

	return Move{
		From:        from,
		To:          safe,
		Direction:   n.direction,
		Changed:     true,
		ScrollToTop: true,
	}
}

// Next moves one page forward.
func (n *Navigator) Next() Move { return n.MoveToPage(n.current + 1) }

// Prev moves one page back.
func (n *Navigator) Prev() Move { return n.MoveToPage(n.current - 1) }

// CanNext reports whether a later page exists.
func (n *Navigator) CanNext() bool { return n.current < n.pageCount-1 }

// CanPrev reports whether an earlier page exists.
func (n *Navigator) CanPrev() bool { return n.current > 0 }

func (n *Navigator) Current() int         { return n.current }
func (n *Navigator) Direction() Direction { return n.direction }
func (n *Navigator) PageCount() int       { return n.pageCount }

// Progress returns the fraction of the guidebook reached, in (0, 1].
func (n *Navigator) Progress() float64 {
	return float64(n.current+1) / float64(n.pageCount)
}

func (n *Navigator) MenuOpen() bool { return n.menuOpen }
func (n *Navigator) OpenMenu()      { n.menuOpen = true }
func (n *Navigator) CloseMenu()     { n.menuOpen = false }
func (n *Navigator) ToggleMenu()    { n.menuOpen = !n.menuOpen }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
