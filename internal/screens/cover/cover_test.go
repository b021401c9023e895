package cover

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abaqira/guidebook/internal/guide"
	"github.com/abaqira/guidebook/internal/imageload"
	"github.com/abaqira/guidebook/internal/router"
	"github.com/abaqira/guidebook/internal/screen"
	"github.com/abaqira/guidebook/internal/ui/components"
)

type failingLoader struct{ calls []string }

func (f *failingLoader) Load(_ context.Context, src string) error {
	f.calls = append(f.calls, src)
	return errors.New("missing")
}

func testHero() guide.Hero {
	return guide.Hero{
		Kicker:   "الموسم الخامس",
		Title:    "اهلا بكم",
		Year:     "2026",
		Start:    "ابدأ المسابقة",
		Cover:    "/assets/cover.png",
		CoverAlt: "غلاف",
	}
}

func sendTicks(c *CoverScreen, n int) {
	var s screen.Screen = c
	for i := 0; i < n; i++ {
		s, _ = s.Update(tickMsg(time.Now()))
	}
}

func TestPhaseTransitions(t *testing.T) {
	c := New(testHero(), &failingLoader{})

	if strings.Contains(c.View(100, 30), "2026") {
		t.Error("year should not be visible at start")
	}

	sendTicks(c, 9)
	if c.elapsed != 900*time.Millisecond {
		t.Errorf("expected elapsed 900ms, got %v", c.elapsed)
	}
	if !strings.Contains(c.View(100, 30), "2026") {
		t.Error("year should be visible after phase 2")
	}
}

func TestElapsedCapped(t *testing.T) {
	c := New(testHero(), &failingLoader{})
	sendTicks(c, 40)
	if c.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, c.elapsed)
	}
}

func TestEnterGoesToIntroduction(t *testing.T) {
	c := New(testHero(), &failingLoader{})

	_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	msg, ok := cmd().(router.GoToPageMsg)
	if !ok {
		t.Fatalf("expected GoToPageMsg, got %T", cmd())
	}
	if msg.Page != 1 {
		t.Errorf("expected page 1, got %d", msg.Page)
	}
}

func TestOtherKeySkipsAnimation(t *testing.T) {
	c := New(testHero(), &failingLoader{})

	_, cmd := c.Update(tea.KeyPressMsg{Code: 'a'})
	if cmd != nil {
		t.Error("non-enter key should not navigate")
	}
	if c.elapsed != totalDur {
		t.Errorf("expected animation skipped, got %v", c.elapsed)
	}
}

func TestCoverImageRetriesOnceThenFallsBack(t *testing.T) {
	loader := &failingLoader{}
	c := New(testHero(), loader)

	_, cmd := c.Update(imageload.FailedMsg{Key: imageKey, Src: "/assets/cover.png"})
	if cmd == nil {
		t.Fatal("expected a retry command")
	}
	retry, ok := cmd().(imageload.FailedMsg)
	if !ok {
		t.Fatalf("expected FailedMsg from retry, got %T", cmd())
	}
	if retry.Src != "/assets/cover.png?cb=1" {
		t.Errorf("unexpected retry source %q", retry.Src)
	}

	_, cmd = c.Update(retry)
	if cmd != nil {
		t.Error("second failure should not retry")
	}
	if !c.image.Failed {
		t.Error("expected permanent failure")
	}

	c.elapsed = totalDur
	if !strings.Contains(c.View(100, 30), components.ImageFallback) {
		t.Error("expected fallback text in view")
	}
}

func TestStaleImageResultIgnored(t *testing.T) {
	c := New(testHero(), &failingLoader{})
	c.Update(imageload.LoadedMsg{Key: imageKey, Src: "/other.png"})
	if c.image.Loaded {
		t.Error("result for another source should be ignored")
	}
	c.Update(imageload.LoadedMsg{Key: imageKey, Src: "/assets/cover.png"})
	if !c.image.Loaded {
		t.Error("expected image loaded")
	}
}
