// Package welcome is the splash screen shown when the TUI starts.
package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shellingo/shellingo/internal/router"
	"github.com/shellingo/shellingo/internal/screen"
	"github.com/shellingo/shellingo/internal/ui/theme"
)

const (
	tickInterval = 40 * time.Millisecond
	tagline      = "$ practice your shell, one command at a time"
)

// cursorFrames blink the prompt cursor once typing is done.
var cursorFrames = []string{"█", " "}

type tickMsg time.Time

// WelcomeScreen types out a tagline under the banner, then hands over to
// the screen produced by next on the first key press.
type WelcomeScreen struct {
	next         func() screen.Screen
	groups       int
	typed        int
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen. groups is the number of groups discovered,
// shown once the tagline is complete.
func New(groups int, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		next:   next,
		groups: groups,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.typed < len([]rune(tagline)) {
			w.typed++
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

// done reports whether the whole tagline has been typed.
func (w *WelcomeScreen) done() bool {
	return w.typed >= len([]rune(tagline))
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width), ""}

	line := string([]rune(tagline)[:w.typed])
	cursor := cursorFrames[0]
	if w.done() {
		cursor = cursorFrames[(w.tickCount/10)%len(cursorFrames)]
	}
	sections = append(sections, theme.Prompt.Render(line)+theme.Title.Render(cursor))

	if w.done() {
		found := "No question groups found."
		switch {
		case w.groups == 1:
			found = "1 question group found."
		case w.groups > 1:
			found = fmt.Sprintf("%d question groups found.", w.groups)
		}
		sections = append(sections,
			"",
			theme.Body.Render(found),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
