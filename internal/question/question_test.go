package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	q := New("basics.sll", "list files", "ls")

	assert.Equal(t, "list files", q.Text)
	assert.Equal(t, []string{"ls"}, q.Answers())
	assert.Equal(t, []string{"basics.sll"}, q.Locations())
	assert.Zero(t, q.RoundCorrect())
	assert.Zero(t, q.RoundError())
	assert.Zero(t, q.LifetimeCorrect())
	assert.Zero(t, q.LifetimeError())
}

func TestEqual_IdentityIsText(t *testing.T) {
	a := New("a.sll", "show date", "date")
	b := New("b.sll", "show date", "date -u")
	c := New("a.sll", "show time", "date")

	assert.True(t, a.Equal(b), "answers and locations must not affect identity")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestAnswers_Sorted(t *testing.T) {
	q := New("a.sll", "q", "b")
	q.AddAnswer("a")
	q.AddAnswer("b")
	q.AddAnswer("")

	assert.Equal(t, []string{"a", "b"}, q.Answers())
	assert.True(t, q.HasAnswer("a"))
	assert.False(t, q.HasAnswer(""))
}

func TestIncrement(t *testing.T) {
	q := New("a.sll", "q", "a")

	q.IncrementCorrect(1)
	q.IncrementCorrect(2)
	q.IncrementError(5)

	assert.Equal(t, 3, q.RoundCorrect())
	assert.Equal(t, 3, q.LifetimeCorrect())
	assert.Equal(t, 5, q.RoundError())
	assert.Equal(t, 5, q.LifetimeError())
}

func TestIncrement_NonPositiveIgnored(t *testing.T) {
	q := New("a.sll", "q", "a")
	q.IncrementError(3)

	q.IncrementError(-2)
	q.IncrementError(0)
	q.IncrementCorrect(-1)

	assert.Equal(t, 3, q.RoundError())
	assert.Equal(t, 3, q.LifetimeError())
	assert.Zero(t, q.RoundCorrect())
}

func TestResetRoundStats_KeepsLifetime(t *testing.T) {
	q := New("a.sll", "q", "a")
	q.IncrementCorrect(4)
	q.IncrementError(10)

	q.ResetRoundStats()

	assert.Zero(t, q.RoundCorrect())
	assert.Zero(t, q.RoundError())
	assert.Equal(t, 4, q.LifetimeCorrect())
	assert.Equal(t, 10, q.LifetimeError())
}
