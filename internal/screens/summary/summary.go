// Package summary shows how a practice run went once it is ended.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/shellingo/shellingo/internal/router"
	"github.com/shellingo/shellingo/internal/screen"
	"github.com/shellingo/shellingo/internal/session"
	"github.com/shellingo/shellingo/internal/ui/layout"
	"github.com/shellingo/shellingo/internal/ui/theme"
)

// SummaryScreen displays the report of a finished practice run.
type SummaryScreen struct {
	report session.Report
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(report session.Report) *SummaryScreen {
	return &SummaryScreen{report: report}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Practice Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to groups"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "space", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.report
	center := func(style lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
	}

	var b strings.Builder

	b.WriteString(center(theme.Title, "Practice complete!"))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Hint, "Time: "+formatDuration(r.Duration)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Pool: %d    Correct: %d    Errors: %d    Accuracy: %.0f%%",
		r.PoolSize, r.RoundCorrect, r.RoundError, r.Accuracy*100)
	b.WriteString(center(theme.Body, statsLine))
	b.WriteString("\n")
	b.WriteString(center(theme.Hint, fmt.Sprintf("Lifetime: ✓ %d  ✗ %d", r.LifetimeCorrect, r.LifetimeError)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	if len(r.Hardest) == 0 {
		b.WriteString(center(theme.Correct, "No mistakes this round."))
		return b.String()
	}

	b.WriteString(center(theme.Hint, "Hardest questions"))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, q := range r.Hardest {
		line := fmt.Sprintf("%-32s %s   ✗ %d  ✓ %d",
			q.Text, strings.Join(q.Answers, " | "), q.RoundError, q.RoundCorrect)
		b.WriteString(center(theme.Body, line))
		b.WriteString("\n")
	}

	return b.String()
}

func formatDuration(d time.Duration) string {
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
