package practice

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/shellingo/shellingo/internal/group"
	drill "github.com/shellingo/shellingo/internal/practice"
	"github.com/shellingo/shellingo/internal/question"
	"github.com/shellingo/shellingo/internal/router"
	"github.com/shellingo/shellingo/internal/screen"
	"github.com/shellingo/shellingo/internal/screens/summary"
	sess "github.com/shellingo/shellingo/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// testPracticeScreen starts practice over a group with two questions.
func testPracticeScreen(t *testing.T) (*PracticeScreen, *sess.Session) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "files.sll")
	content := "list files | ls\nshow date | date\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := sess.New(sess.Options{
		Catalog: group.Discover([]string{path}),
		Rand:    drill.NewSource(5),
	})
	if _, err := s.ToggleGroup(t.Context(), 0); err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(sess.ActionStartPractice); err != nil {
		t.Fatal(err)
	}
	return New(s), s
}

func current(t *testing.T, s *sess.Session) *question.Question {
	t.Helper()
	q, ok := s.Current()
	if !ok {
		t.Fatal("expected a current question")
	}
	return q
}

func answerFor(q *question.Question) string {
	return q.Answers()[0]
}

func typeText(scr screen.Screen, text string) screen.Screen {
	for _, r := range text {
		scr, _ = scr.Update(keyPress(r))
	}
	return scr
}

func TestPracticeScreen_CorrectAnswerAdvances(t *testing.T) {
	p, s := testPracticeScreen(t)
	q := current(t, s)

	var scr screen.Screen = p
	scr = typeText(scr, strings.ToUpper(answerFor(q))+"!")
	scr.Update(specialKey(tea.KeyEnter))

	if q.RoundCorrect() != 1 {
		t.Errorf("round correct = %d, want 1", q.RoundCorrect())
	}
	if p.kind != feedbackCorrect {
		t.Errorf("feedback kind = %d, want correct", p.kind)
	}
	if p.input.Value() != "" {
		t.Error("expected input to be cleared")
	}
	if sess.BuildSummary(s).Position != 1 {
		t.Error("expected the round to move on")
	}
}

func TestPracticeScreen_WrongAnswerStays(t *testing.T) {
	p, s := testPracticeScreen(t)
	q := current(t, s)

	var scr screen.Screen = p
	scr = typeText(scr, "rm -rf")
	scr.Update(specialKey(tea.KeyEnter))

	if q.RoundError() != 1 {
		t.Errorf("round error = %d, want 1", q.RoundError())
	}
	if p.kind != feedbackIncorrect {
		t.Errorf("feedback kind = %d, want incorrect", p.kind)
	}
	if current(t, s) != q {
		t.Error("expected the same question after a wrong answer")
	}
	if p.input.Value() != "rm -rf" {
		t.Error("expected the attempt to stay in the input")
	}
}

func TestPracticeScreen_EmptySubmitIgnored(t *testing.T) {
	p, s := testPracticeScreen(t)
	q := current(t, s)

	p.Update(specialKey(tea.KeyEnter))

	if q.RoundError() != 0 || q.RoundCorrect() != 0 {
		t.Error("blank submission must not be scored")
	}
}

func TestPracticeScreen_ClueAndReveal(t *testing.T) {
	p, s := testPracticeScreen(t)
	q := current(t, s)

	p.Update(ctrlKey('t'))
	if !strings.HasPrefix(p.feedback, "Clue: ") || !strings.Contains(p.feedback, string(drill.MaskGlyph)) {
		t.Errorf("unexpected clue feedback %q", p.feedback)
	}
	if q.RoundError() != drill.ClueRevealPenalty {
		t.Errorf("round error = %d, want %d", q.RoundError(), drill.ClueRevealPenalty)
	}

	p.Update(ctrlKey('r'))
	if p.feedback != "Answer: "+answerFor(q) {
		t.Errorf("unexpected reveal feedback %q", p.feedback)
	}
	if q.RoundError() != drill.ClueRevealPenalty+drill.AnswerRevealPenalty {
		t.Errorf("round error = %d after reveal", q.RoundError())
	}

	score := p.Score()
	if !score.Visible || score.Errors != q.RoundError() {
		t.Errorf("header score = %+v", score)
	}
}

func TestPracticeScreen_Skip(t *testing.T) {
	p, s := testPracticeScreen(t)
	q := current(t, s)

	p.Update(ctrlKey('n'))

	if sess.BuildSummary(s).Position != 1 {
		t.Error("expected skip to advance")
	}
	if q.RoundError() != 0 {
		t.Error("skipping is not scored")
	}
}

func TestPracticeScreen_ControlsMenu(t *testing.T) {
	p, s := testPracticeScreen(t)
	q := current(t, s)
	q.IncrementError(3)

	p.Update(specialKey(tea.KeyTab))
	if !p.controls.Focused() {
		t.Fatal("expected controls to have focus")
	}

	// End practice, Reset stats.
	p.Update(specialKey(tea.KeyDown))
	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a control command")
	}
	msg := cmd()
	if _, ok := msg.(controlMsg); !ok {
		t.Fatalf("expected controlMsg, got %T", msg)
	}
	p.Update(msg)

	if q.RoundError() != 0 {
		t.Errorf("round error = %d after reset, want 0", q.RoundError())
	}
	if q.LifetimeError() != 3 {
		t.Errorf("lifetime error = %d, want 3", q.LifetimeError())
	}
	if p.kind != feedbackInfo {
		t.Error("expected an info message after a control")
	}

	// Keys go to the menu, not the input, while it has focus.
	p.Update(keyPress('x'))
	if p.input.Value() != "" {
		t.Error("typing must not reach the input while controls are focused")
	}

	p.Update(specialKey(tea.KeyTab))
	if p.controls.Focused() {
		t.Error("expected focus back on the input")
	}
}

func TestPracticeScreen_EscEndsPractice(t *testing.T) {
	p, s := testPracticeScreen(t)

	_, cmd := p.Update(specialKey(tea.KeyEscape))

	if s.Phase() != sess.PhaseSetup {
		t.Errorf("phase = %s, want setup", s.Phase())
	}
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}
}

func TestPracticeScreen_View(t *testing.T) {
	p, s := testPracticeScreen(t)
	q := current(t, s)

	view := p.View(100, 30)

	for _, want := range []string{q.Text, "Controls", "End practice", "Try hardest 10", "1/2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if p.Title() != "Practice" {
		t.Errorf("Title = %q", p.Title())
	}
	if len(p.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
