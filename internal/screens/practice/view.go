package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shellingo/shellingo/internal/ui/components"
	"github.com/shellingo/shellingo/internal/ui/theme"
)

const controlsWidth = 22

func (p *PracticeScreen) View(width, height int) string {
	mainWidth := width - controlsWidth - 4
	if mainWidth < 20 {
		mainWidth = 20
	}

	controlsPanel := theme.Panel
	if p.controls.Focused() {
		controlsPanel = theme.FocusedPanel
	}
	controls := controlsPanel.
		Width(controlsWidth).
		Render(theme.Title.Render("Controls") + "\n" + strings.TrimRight(p.controls.View(), "\n"))

	main := p.renderMain(mainWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, controls, " ", main)
}

func (p *PracticeScreen) renderMain(width int) string {
	q, ok := p.session.Current()
	if !ok {
		return theme.Hint.Render("No question to ask.")
	}
	stats := p.session.Stats()

	var b strings.Builder

	bar := components.NewProgressBar("Round", stats.Position+1, stats.PoolSize, width-2)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Panel.Width(width).Render(theme.Prompt.Render(q.Text)))
	b.WriteString("\n")

	answerPanel := theme.Panel
	if !p.controls.Focused() {
		answerPanel = theme.FocusedPanel
	}
	b.WriteString(answerPanel.Width(width).Render(p.input.View()))
	b.WriteString("\n")

	if p.feedback != "" {
		b.WriteString(" " + feedbackStyle(p.kind).Render(p.feedback))
	}
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render(fmt.Sprintf(
		" This question: ✓ %d ✗ %d   Lifetime pool: ✓ %d ✗ %d   Lap %d   Accuracy %d%%",
		q.RoundCorrect(), q.RoundError(),
		stats.LifetimeCorrect, stats.LifetimeError,
		stats.Laps+1,
		int(stats.Accuracy*100),
	)))
	return b.String()
}

func feedbackStyle(kind feedbackKind) lipgloss.Style {
	switch kind {
	case feedbackCorrect:
		return theme.Correct
	case feedbackIncorrect:
		return theme.Incorrect
	case feedbackHint:
		return theme.Revealed
	default:
		return theme.Hint
	}
}
