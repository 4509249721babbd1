// Package setup is the group selection screen shown before practice.
package setup

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/shellingo/shellingo/internal/router"
	"github.com/shellingo/shellingo/internal/screen"
	practicescreen "github.com/shellingo/shellingo/internal/screens/practice"
	sess "github.com/shellingo/shellingo/internal/session"
	"github.com/shellingo/shellingo/internal/ui/components"
	"github.com/shellingo/shellingo/internal/ui/layout"
)

// SetupScreen lists the discovered groups and lets the user toggle them.
type SetupScreen struct {
	ctx         context.Context
	session     *sess.Session
	groups      components.Checklist
	confirmQuit bool
	notice      string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen. ctx is used when a group has to be loaded.
func New(ctx context.Context, session *sess.Session) *SetupScreen {
	s := &SetupScreen{
		ctx:     ctx,
		session: session,
	}
	s.refresh()
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Choose groups"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit"},
			{Key: "N", Description: "Stay"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "P", Description: "Practice"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.ScreenResumedMsg:
		s.notice = ""
		s.refresh()
		return s, nil

	case components.ToggleMsg:
		return s.toggle(msg.Index)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y", "enter":
			return s, s.exit()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc", "q":
		s.confirmQuit = true
		return s, nil
	case "p", "P":
		return s.startPractice()
	}

	var cmd tea.Cmd
	s.groups, cmd = s.groups.Update(msg)
	return s, cmd
}

func (s *SetupScreen) toggle(index int) (screen.Screen, tea.Cmd) {
	if _, err := s.session.ToggleGroup(s.ctx, index); err != nil {
		s.notice = err.Error()
		return s, nil
	}
	s.notice = ""
	s.refresh()
	return s, nil
}

func (s *SetupScreen) startPractice() (screen.Screen, tea.Cmd) {
	err := s.session.Apply(sess.ActionStartPractice)
	switch {
	case errors.Is(err, sess.ErrNoQuestions):
		s.notice = "Activate at least one group with questions first."
		return s, nil
	case err != nil:
		s.notice = err.Error()
		return s, nil
	}

	s.notice = ""
	next := practicescreen.New(s.session)
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

// exit asks the session to end. ErrExit is the only way out.
func (s *SetupScreen) exit() tea.Cmd {
	if err := s.session.Apply(sess.ActionExit); errors.Is(err, sess.ErrExit) {
		return tea.Quit
	}
	s.confirmQuit = false
	return nil
}

// refresh rebuilds the checklist rows from the session's groups.
func (s *SetupScreen) refresh() {
	groups := s.session.Groups()
	items := make([]components.ChecklistItem, len(groups))
	for i, g := range groups {
		items[i] = components.ChecklistItem{
			Label:   g.Name,
			Detail:  groupDetail(len(g.Paths), len(g.Questions), g.Active),
			Checked: g.Active,
		}
	}
	s.groups.SetItems(items)
}

func groupDetail(files, questions int, active bool) string {
	detail := plural(files, "file")
	if active {
		detail = plural(questions, "question") + ", " + detail
	}
	return "(" + detail + ")"
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
