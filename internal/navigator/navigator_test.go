package navigator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveToPageClamps(t *testing.T) {
	targets := []int{math.MinInt, -100, -1, 0, 1, 2, 3, 4, 5, 6, 7, 100, math.MaxInt}
	for _, target := range targets {
		n := New(6)
		n.MoveToPage(target)

		want := target
		if want < 0 {
			want = 0
		}
		if want > 5 {
			want = 5
		}
		assert.Equal(t, want, n.Current(), "target %d", target)
	}
}

func TestMoveToPageFromEveryPage(t *testing.T) {
	for start := 0; start < 6; start++ {
		for target := -2; target < 8; target++ {
			n := New(6)
			n.MoveToPage(start)
			before := n.Direction()

			m := n.MoveToPage(target)
			got := n.Current()

			switch {
			case got > start:
				assert.Equal(t, Forward, n.Direction())
				assert.True(t, m.Changed)
			case got < start:
				assert.Equal(t, Backward, n.Direction())
				assert.True(t, m.Changed)
			default:
				assert.Equal(t, before, n.Direction())
				assert.False(t, m.Changed)
			}
		}
	}
}

func TestMoveReportsTransition(t *testing.T) {
	n := New(6)

	m := n.MoveToPage(3)
	assert.Equal(t, Move{From: 0, To: 3, Direction: Forward, Changed: true, ScrollToTop: true}, m)

	m = n.MoveToPage(1)
	assert.Equal(t, Move{From: 3, To: 1, Direction: Backward, Changed: true, ScrollToTop: true}, m)
}

func TestMoveToCurrentPageIsIdempotent(t *testing.T) {
	n := New(6)
	n.MoveToPage(2)

	n.OpenMenu()
	first := n.MoveToPage(2)
	assert.False(t, first.Changed)
	assert.False(t, first.ScrollToTop)
	assert.False(t, n.MenuOpen(), "menu should close even without a page change")

	second := n.MoveToPage(2)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, n.Current())
	assert.Equal(t, Forward, n.Direction())
}

func TestMoveClosesMenu(t *testing.T) {
	n := New(6)
	n.ToggleMenu()
	require.True(t, n.MenuOpen())

	n.MoveToPage(4)
	assert.False(t, n.MenuOpen())
}

func TestNextPrevBounds(t *testing.T) {
	n := New(6)
	assert.False(t, n.CanPrev())
	assert.True(t, n.CanNext())

	m := n.Prev()
	assert.False(t, m.Changed)
	assert.Equal(t, 0, n.Current())

	for i := 0; i < 10; i++ {
		n.Next()
	}
	assert.Equal(t, 5, n.Current())
	assert.False(t, n.CanNext())
	assert.True(t, n.CanPrev())
}

func TestProgress(t *testing.T) {
	n := New(6)
	assert.InDelta(t, 1.0/6.0, n.Progress(), 1e-9)
	n.MoveToPage(5)
	assert.InDelta(t, 1.0, n.Progress(), 1e-9)
}

func TestNewMinimumPageCount(t *testing.T) {
	n := New(0)
	assert.Equal(t, 1, n.PageCount())
	n.MoveToPage(3)
	assert.Equal(t, 0, n.Current())
}
