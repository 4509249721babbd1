package session

import "fmt"

// Phase is the top level mode of a session.
type Phase int

const (
	PhaseSetup    Phase = iota // Choosing groups
	PhasePractice              // Drilling the round pool
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePractice:
		return "practice"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Action is a request from the host to change session state.
type Action int

const (
	ActionStartPractice Action = iota
	ActionEndPractice
	ActionResetStats
	ActionTryAll
	ActionTryHardest5
	ActionTryHardest10
	ActionNextQuestion
	ActionExit
)

var actionNames = map[Action]string{
	ActionStartPractice: "start practice",
	ActionEndPractice:   "end practice",
	ActionResetStats:    "reset stats",
	ActionTryAll:        "try all",
	ActionTryHardest5:   "try hardest 5",
	ActionTryHardest10:  "try hardest 10",
	ActionNextQuestion:  "next question",
	ActionExit:          "exit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// PracticeControls lists the controls offered while practicing, in display
// order.
var PracticeControls = []Action{
	ActionEndPractice,
	ActionResetStats,
	ActionTryAll,
	ActionTryHardest5,
	ActionTryHardest10,
}

// transitions maps each phase to the actions it accepts and the phase each
// one leads to. Anything missing is refused.
var transitions = map[Phase]map[Action]Phase{
	PhaseSetup: {
		ActionStartPractice: PhasePractice,
		ActionExit:          PhaseSetup,
	},
	PhasePractice: {
		ActionEndPractice:  PhaseSetup,
		ActionResetStats:   PhasePractice,
		ActionTryAll:       PhasePractice,
		ActionTryHardest5:  PhasePractice,
		ActionTryHardest10: PhasePractice,
		ActionNextQuestion: PhasePractice,
		ActionExit:         PhasePractice,
	},
}

// Allowed reports whether action is accepted in phase and the phase it leads
// to.
func Allowed(phase Phase, action Action) (Phase, bool) {
	next, ok := transitions[phase][action]
	return next, ok
}
