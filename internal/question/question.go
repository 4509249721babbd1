// Package question defines the Question entity, its score counters and the
// merge-by-text rules used when the same prompt appears in several files.
package question

import (
	"fmt"
	"sort"
)

// Question is a prompt with one or more accepted answers. Its identity is
// Text alone; answers and locations never take part in equality.
type Question struct {
	Text string

	answers   map[string]struct{}
	locations map[string]struct{}

	roundCorrect    int
	roundError      int
	lifetimeCorrect int
	lifetimeError   int
}

// New creates a question read from location with a single accepted answer.
func New(location, text, answer string) *Question {
	q := &Question{
		Text:      text,
		answers:   make(map[string]struct{}),
		locations: make(map[string]struct{}),
	}
	q.AddAnswer(answer)
	q.AddLocation(location)
	return q
}

// Equal reports whether q and other share the same identity.
func (q *Question) Equal(other *Question) bool {
	if q == nil || other == nil {
		return q == other
	}
	return q.Text == other.Text
}

// AddAnswer adds an accepted answer. Empty answers are ignored.
func (q *Question) AddAnswer(answer string) {
	if answer == "" {
		return
	}
	if q.answers == nil {
		q.answers = make(map[string]struct{})
	}
	q.answers[answer] = struct{}{}
}

// AddLocation records a file the question was read from.
func (q *Question) AddLocation(location string) {
	if location == "" {
		return
	}
	if q.locations == nil {
		q.locations = make(map[string]struct{})
	}
	q.locations[location] = struct{}{}
}

// Answers returns the accepted answers in lexical order.
func (q *Question) Answers() []string {
	return sortedKeys(q.answers)
}

// Locations returns the origin files in lexical order.
func (q *Question) Locations() []string {
	return sortedKeys(q.locations)
}

// HasAnswer reports whether answer is accepted verbatim.
func (q *Question) HasAnswer(answer string) bool {
	_, ok := q.answers[answer]
	return ok
}

// Absorb unions the answers and locations of other into q. Counters are left
// untouched.
func (q *Question) Absorb(other *Question) {
	for a := range other.answers {
		q.AddAnswer(a)
	}
	for l := range other.locations {
		q.AddLocation(l)
	}
}

func (q *Question) clearContent() {
	q.answers = nil
	q.locations = nil
}

func (q *Question) String() string {
	return fmt.Sprintf("%q -> %v", q.Text, q.Answers())
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
