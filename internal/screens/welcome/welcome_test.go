package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/shellingo/shellingo/internal/router"
	"github.com/shellingo/shellingo/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "setup" }
func (s *stubScreen) Title() string                          { return "Setup" }

func newTestWelcome(groups int) (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(groups, factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestTaglineIsTypedOut(t *testing.T) {
	w, _ := newTestWelcome(3)

	sendTicks(w, 2)
	if w.typed != 2 {
		t.Errorf("expected 2 typed runes, got %d", w.typed)
	}
	if strings.Contains(w.View(100, 30), "press any key") {
		t.Error("hint should not show while typing")
	}

	sendTicks(w, len(tagline)+5)
	if !w.done() {
		t.Fatal("expected tagline to be complete")
	}
	if w.typed != len([]rune(tagline)) {
		t.Errorf("typed should stop at tagline length, got %d", w.typed)
	}

	view := w.View(100, 30)
	if !strings.Contains(view, "3 question groups found.") {
		t.Error("expected group count once typing is done")
	}
	if !strings.Contains(view, "press any key") {
		t.Error("expected hint once typing is done")
	}
}

func TestKeypressDuringTypingTransitions(t *testing.T) {
	w, callCount := newTestWelcome(1)
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger transition")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replace.Screen == nil {
		t.Error("replacement screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, callCount := newTestWelcome(0)

	sendTicks(w, 200)

	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
	if !strings.Contains(w.View(100, 30), "No question groups found.") {
		t.Error("expected empty catalog notice")
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome(2)

	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})

	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTicksStopAfterTransition(t *testing.T) {
	w, _ := newTestWelcome(2)
	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	_, cmd := w.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Error("no more ticks expected after transition")
	}
}

func TestCompactBannerOnNarrowTerminal(t *testing.T) {
	if !strings.Contains(RenderBanner(40), bannerCompact) {
		t.Error("expected compact banner for narrow width")
	}
	if strings.Contains(RenderBanner(120), bannerCompact) {
		t.Error("expected full banner for wide width")
	}
}
