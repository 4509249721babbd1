package practice

import (
	"math/rand/v2"

	"github.com/shellingo/shellingo/internal/question"
)

// Round is the pool of questions being drilled and a cursor into it. Walking
// past the end reshuffles the same pool and starts over, so a round never
// runs out.
type Round struct {
	rng       *rand.Rand
	questions []*question.Question
	cursor    int
	laps      int
}

// NewRound shuffles a copy of qs and positions the cursor on the first one.
func NewRound(rng *rand.Rand, qs []*question.Question) *Round {
	r := &Round{rng: rng}
	r.Reset(qs)
	return r
}

// Reset replaces the pool with a shuffled copy of qs and rewinds the cursor.
func (r *Round) Reset(qs []*question.Question) {
	r.questions = make([]*question.Question, len(qs))
	copy(r.questions, qs)
	r.laps = 0
	r.Reshuffle()
}

// Reshuffle permutes the current pool and rewinds the cursor.
func (r *Round) Reshuffle() {
	Shuffle(r.rng, r.questions)
	r.cursor = 0
}

// Current returns the question under the cursor. ok is false for an empty
// pool.
func (r *Round) Current() (q *question.Question, ok bool) {
	if r.cursor < 0 || r.cursor >= len(r.questions) {
		return nil, false
	}
	return r.questions[r.cursor], true
}

// Next advances the cursor, reshuffling when the end of the pool is reached.
func (r *Round) Next() {
	if len(r.questions) == 0 {
		return
	}
	r.cursor++
	if r.cursor >= len(r.questions) {
		r.laps++
		r.Reshuffle()
	}
}

// Questions returns a copy of the pool in presentation order.
func (r *Round) Questions() []*question.Question {
	out := make([]*question.Question, len(r.questions))
	copy(out, r.questions)
	return out
}

// Len returns the pool size.
func (r *Round) Len() int { return len(r.questions) }

// Position returns the zero-based cursor.
func (r *Round) Position() int { return r.cursor }

// Laps counts how many times the pool has been exhausted and reshuffled.
func (r *Round) Laps() int { return r.laps }
