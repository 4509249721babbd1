package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/shellingo/shellingo/internal/screen"
)

// stubScreen records what the router did to it.
type stubScreen struct {
	title    string
	initRan  bool
	received []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "setup"})

	practice := &stubScreen{title: "practice"}
	r.Update(PushScreenMsg{Screen: practice})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "practice" {
		t.Errorf("expected active 'practice', got %q", r.Active().Title())
	}
	if !practice.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopResumesScreenBelow(t *testing.T) {
	setup := &stubScreen{title: "setup"}
	r := New(setup)
	r.Push(&stubScreen{title: "practice"})

	cmd := r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "setup" {
		t.Errorf("expected active 'setup', got %q", r.Active().Title())
	}
	if cmd == nil {
		t.Fatal("expected a resume command after pop")
	}
	if _, ok := cmd().(ScreenResumedMsg); !ok {
		t.Error("expected ScreenResumedMsg from pop command")
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "setup"})

	if cmd := r.Pop(); cmd != nil {
		t.Error("expected no command when popping the last screen")
	}
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "setup"})
	r.Push(&stubScreen{title: "practice"})

	replacement := &stubScreen{title: "practice again"}
	r.Update(ReplaceScreenMsg{Screen: replacement})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "practice again" {
		t.Errorf("expected active 'practice again', got %q", r.Active().Title())
	}
	if !replacement.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	setup := &stubScreen{title: "setup"}
	practice := &stubScreen{title: "practice"}
	r := New(setup)
	r.Push(practice)

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	if len(practice.received) != 1 {
		t.Errorf("expected active screen to get 1 message, got %d", len(practice.received))
	}
	if len(setup.received) != 0 {
		t.Errorf("expected covered screen to get nothing, got %d", len(setup.received))
	}
	if r.View(80, 24) != "practice" {
		t.Errorf("expected view of active screen, got %q", r.View(80, 24))
	}
}
