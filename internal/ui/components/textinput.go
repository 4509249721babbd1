package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/shellingo/shellingo/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typing answers. It remembers the
// verdict of the last submission until the text changes.
type AnswerInput struct {
	Model   textinput.Model
	checked bool
	correct bool
}

// NewAnswerInput creates a focused answer input.
func NewAnswerInput(placeholder string, charLimit int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "$ "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text model. Editing clears the verdict.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	before := a.Model.Value()
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	if a.Model.Value() != before {
		a.checked = false
	}
	return a, cmd
}

// View renders the input followed by the verdict mark, if any.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.checked {
		if a.correct {
			view += " " + theme.Correct.Render("✓")
		} else {
			view += " " + theme.Incorrect.Render("✗")
		}
	}
	return view
}

// Value returns the typed text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Mark records the verdict for the current text.
func (a *AnswerInput) Mark(correct bool) {
	a.checked = true
	a.correct = correct
}

// Clear empties the input and forgets the verdict.
func (a *AnswerInput) Clear() {
	a.Model.SetValue("")
	a.checked = false
}

// Focus gives the input keyboard focus.
func (a *AnswerInput) Focus() tea.Cmd {
	return a.Model.Focus()
}

// Blur removes keyboard focus.
func (a *AnswerInput) Blur() {
	a.Model.Blur()
}

// Focused reports whether the input has focus.
func (a AnswerInput) Focused() bool {
	return a.Model.Focused()
}
