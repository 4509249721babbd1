// Package practice implements the drilling rules: answer validation, the
// clue and answer reveals with their penalties, hardest-first selection and
// shuffling.
package practice

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/shellingo/shellingo/internal/question"
	"github.com/shellingo/shellingo/internal/textnorm"
)

const (
	// ClueRevealPenalty is charged as errors when a masked clue is shown.
	ClueRevealPenalty = 5

	// AnswerRevealPenalty is charged as errors when the answer is shown.
	AnswerRevealPenalty = 10

	// MaskGlyph replaces hidden characters in a clue.
	MaskGlyph = '■'

	// AnswerSeparator joins multiple accepted answers.
	AnswerSeparator = " or "
)

// NewSource returns the random source used for shuffling. A zero seed picks
// one from the clock.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes qs in place.
func Shuffle(rng *rand.Rand, qs []*question.Question) {
	rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}

// Hardest returns at most limit questions ordered by descending round error
// count. Ties keep their relative order from qs. qs is not modified.
func Hardest(qs []*question.Question, limit int) []*question.Question {
	if limit <= 0 {
		return nil
	}
	sorted := make([]*question.Question, len(qs))
	copy(sorted, qs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RoundError() > sorted[j].RoundError()
	})
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// ValidateAttempt reports whether attempt matches any accepted answer after
// both are reduced with textnorm.Comparable. It always scores the question:
// one correct on a match, one error otherwise. A blank attempt never matches,
// but an answer made only of punctuation (".") is matched by itself.
func ValidateAttempt(attempt string, q *question.Question) bool {
	ok := false
	if strings.TrimSpace(attempt) != "" {
		want := textnorm.Comparable(attempt)
		for _, answer := range q.Answers() {
			if textnorm.Comparable(answer) == want {
				ok = true
				break
			}
		}
	}

	if ok {
		q.IncrementCorrect(1)
	} else {
		q.IncrementError(1)
	}
	return ok
}

// RevealClue charges ClueRevealPenalty and returns every accepted answer with
// the characters at odd positions masked.
func RevealClue(q *question.Question) string {
	q.IncrementError(ClueRevealPenalty)

	answers := q.Answers()
	if len(answers) == 0 {
		return fmt.Sprintf("cannot generate clue for %q", q.Text)
	}
	masked := make([]string, len(answers))
	for i, a := range answers {
		masked[i] = Mask(a)
	}
	return strings.Join(masked, AnswerSeparator)
}

// RevealAnswer charges AnswerRevealPenalty and returns all accepted answers.
func RevealAnswer(q *question.Question) string {
	q.IncrementError(AnswerRevealPenalty)

	answers := q.Answers()
	if len(answers) == 0 {
		return fmt.Sprintf("no answers recorded for %q", q.Text)
	}
	return strings.Join(answers, AnswerSeparator)
}

// Mask replaces every character at an odd zero-based position with MaskGlyph.
// Positions count runes, so multi-byte characters are masked whole.
func Mask(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for _, r := range s {
		if i%2 == 1 {
			b.WriteRune(MaskGlyph)
		} else {
			b.WriteRune(r)
		}
		i++
	}
	return b.String()
}
