package session

import (
	"time"

	"github.com/shellingo/shellingo/internal/practice"
)

// Summary holds the round status shown next to the current question.
type Summary struct {
	PoolSize        int
	Position        int
	Laps            int
	RoundCorrect    int
	RoundError      int
	LifetimeCorrect int
	LifetimeError   int
	Accuracy        float64
}

// BuildSummary totals the counters of the questions in the round pool.
// It returns the zero Summary outside practice.
func BuildSummary(s *Session) Summary {
	if s.phase != PhasePractice || s.round == nil {
		return Summary{}
	}

	sum := Summary{
		PoolSize: s.round.Len(),
		Position: s.round.Position(),
		Laps:     s.round.Laps(),
	}
	for _, q := range s.round.Questions() {
		sum.RoundCorrect += q.RoundCorrect()
		sum.RoundError += q.RoundError()
		sum.LifetimeCorrect += q.LifetimeCorrect()
		sum.LifetimeError += q.LifetimeError()
	}

	if attempts := sum.RoundCorrect + sum.RoundError; attempts > 0 {
		sum.Accuracy = float64(sum.RoundCorrect) / float64(attempts)
	}
	return sum
}

// QuestionScore is the round score of one question.
type QuestionScore struct {
	Text         string
	Answers      []string
	RoundCorrect int
	RoundError   int
}

// Report is the end of practice overview: the round totals plus the
// questions that went worst.
type Report struct {
	Summary
	Duration time.Duration
	Hardest  []QuestionScore
}

// BuildReport snapshots the round before it is discarded. Hardest lists at
// most limit questions of the round pool with at least one error, worst
// first. It returns the zero Report outside practice.
func BuildReport(s *Session, limit int) Report {
	if s.phase != PhasePractice || s.round == nil {
		return Report{}
	}

	r := Report{
		Summary:  BuildSummary(s),
		Duration: s.now().Sub(s.startedAt),
	}
	for _, q := range practice.Hardest(s.round.Questions(), limit) {
		if q.RoundError() == 0 {
			break
		}
		r.Hardest = append(r.Hardest, QuestionScore{
			Text:         q.Text,
			Answers:      q.Answers(),
			RoundCorrect: q.RoundCorrect(),
			RoundError:   q.RoundError(),
		})
	}
	return r
}
