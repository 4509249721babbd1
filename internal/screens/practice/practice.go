// Package practice is the screen where questions are asked and answered.
package practice

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/shellingo/shellingo/internal/router"
	"github.com/shellingo/shellingo/internal/screen"
	"github.com/shellingo/shellingo/internal/screens/summary"
	sess "github.com/shellingo/shellingo/internal/session"
	"github.com/shellingo/shellingo/internal/ui/components"
	"github.com/shellingo/shellingo/internal/ui/layout"
)

// reportHardest is how many of the worst questions the summary lists.
const reportHardest = 5

type feedbackKind int

const (
	feedbackNone feedbackKind = iota
	feedbackCorrect
	feedbackIncorrect
	feedbackHint
	feedbackInfo
)

var controlLabels = map[sess.Action]string{
	sess.ActionEndPractice:  "End practice",
	sess.ActionResetStats:   "Reset stats",
	sess.ActionTryAll:       "Try all",
	sess.ActionTryHardest5:  "Try hardest 5",
	sess.ActionTryHardest10: "Try hardest 10",
}

// PracticeScreen asks the questions of the session's round pool.
type PracticeScreen struct {
	session  *sess.Session
	input    components.AnswerInput
	controls components.Menu
	feedback string
	kind     feedbackKind
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.ScoreProvider = (*PracticeScreen)(nil)

// New creates the practice screen. The session must already be practicing.
func New(session *sess.Session) *PracticeScreen {
	return &PracticeScreen{
		session:  session,
		input:    components.NewAnswerInput("Type the command...", 256),
		controls: components.NewMenu(controlItems()),
	}
}

func controlItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(sess.PracticeControls)+3)
	for _, action := range sess.PracticeControls {
		items = append(items, components.MenuItem{
			Label:  controlLabels[action],
			Action: func() tea.Cmd { return send(controlMsg{Action: action}) },
		})
	}
	items = append(items,
		components.MenuItem{Label: "Show clue", Action: func() tea.Cmd { return send(clueMsg{}) }},
		components.MenuItem{Label: "Show answer", Action: func() tea.Cmd { return send(revealMsg{}) }},
		components.MenuItem{Label: "Skip question", Action: func() tea.Cmd { return send(skipMsg{}) }},
	)
	return items
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	if p.controls.Focused() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Tab", Description: "Answer"},
			{Key: "Esc", Description: "End"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "^T", Description: "Clue"},
		{Key: "^R", Description: "Answer"},
		{Key: "^N", Description: "Skip"},
		{Key: "Tab", Description: "Controls"},
		{Key: "Esc", Description: "End"},
	}
}

// Score reports the round tally of the current pool.
func (p *PracticeScreen) Score() layout.Score {
	stats := p.session.Stats()
	return layout.Score{
		Correct: stats.RoundCorrect,
		Errors:  stats.RoundError,
		Visible: true,
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case controlMsg:
		return p.applyControl(msg.Action)

	case clueMsg:
		return p.showClue()

	case revealMsg:
		return p.showAnswer()

	case skipMsg:
		return p.skip()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return p.applyControl(sess.ActionEndPractice)
	case "tab":
		return p, p.switchFocus()
	case "ctrl+t":
		return p.showClue()
	case "ctrl+r":
		return p.showAnswer()
	case "ctrl+n":
		return p.skip()
	}

	if p.controls.Focused() {
		var cmd tea.Cmd
		p.controls, cmd = p.controls.Update(msg)
		return p, cmd
	}

	if msg.String() == "enter" {
		return p.submit()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *PracticeScreen) switchFocus() tea.Cmd {
	if p.controls.Focused() {
		p.controls.Blur()
		return p.input.Focus()
	}
	p.input.Blur()
	p.controls.Focus()
	return nil
}

func (p *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	attempt := p.input.Value()
	if strings.TrimSpace(attempt) == "" {
		return p, nil
	}

	q, ok := p.session.Current()
	if !ok {
		return p, nil
	}
	asked := q.Text

	correct, err := p.session.Submit(attempt)
	if err != nil {
		return p.fail(err)
	}
	if !correct {
		p.input.Mark(false)
		p.setFeedback(feedbackIncorrect, "Not quite, try again.")
		return p, nil
	}

	if err := p.session.Apply(sess.ActionNextQuestion); err != nil {
		return p.fail(err)
	}
	p.input.Clear()
	p.setFeedback(feedbackCorrect, fmt.Sprintf("Correct! %s → %s", asked, attempt))
	return p, nil
}

func (p *PracticeScreen) showClue() (screen.Screen, tea.Cmd) {
	clue, err := p.session.Clue()
	if err != nil {
		return p.fail(err)
	}
	p.setFeedback(feedbackHint, "Clue: "+clue)
	return p, nil
}

func (p *PracticeScreen) showAnswer() (screen.Screen, tea.Cmd) {
	answer, err := p.session.Reveal()
	if err != nil {
		return p.fail(err)
	}
	p.setFeedback(feedbackHint, "Answer: "+answer)
	return p, nil
}

func (p *PracticeScreen) skip() (screen.Screen, tea.Cmd) {
	if err := p.session.Apply(sess.ActionNextQuestion); err != nil {
		return p.fail(err)
	}
	p.input.Clear()
	p.setFeedback(feedbackNone, "")
	return p, nil
}

func (p *PracticeScreen) applyControl(action sess.Action) (screen.Screen, tea.Cmd) {
	var report sess.Report
	if action == sess.ActionEndPractice {
		report = sess.BuildReport(p.session, reportHardest)
	}

	if err := p.session.Apply(action); err != nil {
		return p.fail(err)
	}

	if action == sess.ActionEndPractice {
		return p, send(router.ReplaceScreenMsg{Screen: summary.New(report)})
	}

	p.input.Clear()
	stats := p.session.Stats()
	p.setFeedback(feedbackInfo, fmt.Sprintf("%s: %d questions in the pool.", controlLabels[action], stats.PoolSize))
	return p, nil
}

// fail shows err. Leaving practice behind the screen's back sends the user
// back to setup.
func (p *PracticeScreen) fail(err error) (screen.Screen, tea.Cmd) {
	if errors.Is(err, sess.ErrActionNotAllowed) && p.session.Phase() != sess.PhasePractice {
		return p, send(router.PopScreenMsg{})
	}
	p.setFeedback(feedbackIncorrect, err.Error())
	return p, nil
}

func (p *PracticeScreen) setFeedback(kind feedbackKind, text string) {
	p.kind = kind
	p.feedback = text
}
