package content

import (
	"strings"
	"testing"

	"github.com/abaqira/guidebook/internal/guide"
)

func loadGuide(t *testing.T) *guide.Guidebook {
	t.Helper()
	g, err := guide.Load()
	if err != nil {
		t.Fatalf("guide.Load: %v", err)
	}
	return g
}

func TestPagesUseGuideTitles(t *testing.T) {
	g := loadGuide(t)

	pages := []*ContentScreen{Intro(g), Rules(g), Rounds(g), Penalties(g)}
	for i, p := range pages {
		if p.Title() != g.Pages[i+1] {
			t.Errorf("page %d Title = %q, want %q", i+1, p.Title(), g.Pages[i+1])
		}
	}
}

func TestRulesViewListsEveryRule(t *testing.T) {
	g := loadGuide(t)
	view := Rules(g).View(200, 40)

	for _, rule := range g.Rules {
		if !strings.Contains(view, rule) {
			t.Errorf("rules view missing %q", rule)
		}
	}
}

func TestIntroViewShowsTOC(t *testing.T) {
	g := loadGuide(t)
	view := Intro(g).View(200, 40)

	for _, item := range g.TOC {
		if !strings.Contains(view, item.Topic) {
			t.Errorf("intro view missing TOC topic %q", item.Topic)
		}
	}
}

func TestRoundsViewShowsCategories(t *testing.T) {
	g := loadGuide(t)
	view := Rounds(g).View(200, 60)

	for _, r := range g.Rounds {
		if !strings.Contains(view, r.Title) {
			t.Errorf("rounds view missing round %q", r.Title)
		}
		for _, item := range r.Items {
			if !strings.Contains(view, item) {
				t.Errorf("rounds view missing item %q", item)
			}
		}
	}
}

func TestNarrowViewDoesNotPanic(t *testing.T) {
	g := loadGuide(t)
	view := Penalties(g).View(40, 5)
	if !strings.Contains(view, g.Penalties[0].Title) {
		t.Error("narrow view should still show the first section title")
	}
}
