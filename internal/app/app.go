// Package app hosts the Bubble Tea program that fronts a session.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shellingo/shellingo/internal/logging"
	"github.com/shellingo/shellingo/internal/router"
	"github.com/shellingo/shellingo/internal/screen"
	"github.com/shellingo/shellingo/internal/screens/setup"
	"github.com/shellingo/shellingo/internal/screens/welcome"
	sess "github.com/shellingo/shellingo/internal/session"
	"github.com/shellingo/shellingo/internal/ui/layout"
)

// Options configures Run.
type Options struct {
	Session *sess.Session

	// Splash shows the welcome screen before group selection.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model with either the splash or the setup
// screen at the bottom of the stack.
func newAppModel(ctx context.Context, opts Options) AppModel {
	setupFactory := func() screen.Screen {
		return setup.New(ctx, opts.Session)
	}

	var first screen.Screen
	if opts.Splash {
		first = welcome.New(len(opts.Session.Groups()), setupFactory)
	} else {
		first = setupFactory()
	}
	return AppModel{
		router: router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame: header, active screen and footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var score layout.Score
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.ScoreProvider); ok {
			score = sp.Score()
		}
	}

	header := layout.RenderHeader(title, score, m.width)

	footerHints := []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	log := logging.FromContext(ctx)
	log.Info().Int("groups", len(opts.Session.Groups())).Msg("starting tui")

	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	log.Info().Msg("tui stopped")
	return nil
}
