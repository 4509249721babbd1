package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/shellingo/shellingo/internal/ui/theme"
)

// MenuItem represents a single entry in a Menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical list of actions. Key handling only happens while it is
// focused.
type Menu struct {
	Items    []MenuItem
	Selected int
	focused  bool
}

// NewMenu creates an unfocused menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Focus lets the menu react to keys.
func (m *Menu) Focus() { m.focused = true }

// Blur stops the menu from reacting to keys.
func (m *Menu) Blur() { m.focused = false }

// Focused reports whether the menu has focus.
func (m Menu) Focused() bool { return m.focused }

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter", "space", " ":
		item := m.Items[m.Selected]
		if item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders the menu, one item per line.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case i == m.Selected && m.focused:
			b.WriteString(theme.Selected.Render("▸ " + item.Label))
		case i == m.Selected:
			b.WriteString(theme.Body.Render("› " + item.Label))
		default:
			b.WriteString(theme.Hint.Render("  " + item.Label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
