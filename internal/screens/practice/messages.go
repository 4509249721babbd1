package practice

import sess "github.com/shellingo/shellingo/internal/session"

// controlMsg is sent when a practice control is picked from the menu.
type controlMsg struct {
	Action sess.Action
}

// clueMsg asks for a masked clue of the current question.
type clueMsg struct{}

// revealMsg asks for the answers of the current question.
type revealMsg struct{}

// skipMsg moves on without answering.
type skipMsg struct{}
