package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/shellingo/shellingo/internal/ui/theme"
)

// ChecklistItem is one toggleable row.
type ChecklistItem struct {
	Label   string
	Detail  string
	Checked bool
}

// ToggleMsg is emitted when the user toggles the row at Index.
type ToggleMsg struct {
	Index int
}

// Checklist is a scrollable list of toggleable rows. It does not flip
// Checked itself; the owner handles ToggleMsg and refreshes the items.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
}

// NewChecklist creates a checklist with the cursor on the first row.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// SetItems replaces the rows, keeping the cursor in range.
func (c *Checklist) SetItems(items []ChecklistItem) {
	c.Items = items
	if c.Cursor >= len(items) {
		c.Cursor = len(items) - 1
	}
	if c.Cursor < 0 {
		c.Cursor = 0
	}
}

// Update handles cursor movement and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Items) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "home", "g":
		c.Cursor = 0
	case "end", "G":
		c.Cursor = len(c.Items) - 1
	case "space", " ", "enter":
		index := c.Cursor
		return c, func() tea.Msg { return ToggleMsg{Index: index} }
	}
	return c, nil
}

// View renders at most height rows, scrolled so the cursor stays visible.
func (c Checklist) View(height int) string {
	if len(c.Items) == 0 {
		return theme.Hint.Render("nothing to choose from")
	}
	if height <= 0 || height > len(c.Items) {
		height = len(c.Items)
	}

	start := 0
	if c.Cursor >= height {
		start = c.Cursor - height + 1
	}

	var b strings.Builder
	for i := start; i < start+height; i++ {
		item := c.Items[i]
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, item.Label)

		switch {
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render("▸ " + line))
		case item.Checked:
			b.WriteString(theme.ActiveItem.Render("  " + line))
		default:
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		if item.Detail != "" {
			b.WriteString(" " + theme.Hint.Render(item.Detail))
		}
		if i < start+height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
