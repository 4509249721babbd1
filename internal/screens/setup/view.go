package setup

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/shellingo/shellingo/internal/ui/theme"
)

const previewLimit = 8

func (s *SetupScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}

	listWidth := width / 2
	if listWidth < 24 {
		listWidth = 24
	}
	previewWidth := width - listWidth - 2
	panelHeight := height - 4
	if panelHeight < 3 {
		panelHeight = 3
	}

	list := theme.FocusedPanel.
		Width(listWidth).
		Height(panelHeight).
		Render(theme.Title.Render("Groups") + "\n" + s.groups.View(panelHeight-3))

	preview := theme.Panel.
		Width(previewWidth).
		Height(panelHeight).
		Render(s.renderPreview(previewWidth - 4))

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, preview))
	b.WriteString("\n")
	if s.notice != "" {
		b.WriteString(theme.Incorrect.Render(" " + s.notice))
	} else {
		b.WriteString(theme.Hint.Render(fmt.Sprintf(" %d questions selected", s.selectedCount())))
	}
	return b.String()
}

func (s *SetupScreen) selectedCount() int {
	seen := make(map[string]struct{})
	for _, g := range s.session.Groups() {
		for _, q := range g.Questions {
			seen[q.Text] = struct{}{}
		}
	}
	return len(seen)
}

// renderPreview shows the first questions of the group under the cursor.
func (s *SetupScreen) renderPreview(width int) string {
	groups := s.session.Groups()
	if len(groups) == 0 {
		return theme.Hint.Render("No .sll files found.")
	}
	cursor := s.groups.Cursor
	if cursor < 0 || cursor >= len(groups) {
		return ""
	}
	g := groups[cursor]

	var b strings.Builder
	b.WriteString(theme.Title.Render(g.Name))
	b.WriteString("\n")
	if !g.Active {
		for _, p := range g.Paths {
			b.WriteString(theme.Hint.Render(truncate(p, width)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Toggle to load its questions."))
		return b.String()
	}

	if len(g.Questions) == 0 {
		b.WriteString(theme.Hint.Render("No valid questions in this group."))
		return b.String()
	}
	for i, q := range g.Questions {
		if i == previewLimit {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("… and %d more", len(g.Questions)-previewLimit)))
			break
		}
		b.WriteString(theme.Body.Render(truncate(q.Text, width)))
		b.WriteString("\n")
		b.WriteString(theme.Revealed.Render(truncate("  "+strings.Join(q.Answers(), " | "), width)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderQuitConfirm(width, height int) string {
	box := theme.FocusedPanel.
		Padding(1, 3).
		Render(theme.Prompt.Render("Quit shellingo?") + "\n\n" + theme.Hint.Render("y: quit   n: stay"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
