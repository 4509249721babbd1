package question

// IncrementCorrect adds amount to both the round and lifetime correct counts.
// Non-positive amounts are ignored so counters never decrease.
func (q *Question) IncrementCorrect(amount int) {
	if amount <= 0 {
		return
	}
	q.roundCorrect += amount
	q.lifetimeCorrect += amount
}

// IncrementError adds amount to both the round and lifetime error counts.
// Penalties for revealing clues and answers are charged here as well.
func (q *Question) IncrementError(amount int) {
	if amount <= 0 {
		return
	}
	q.roundError += amount
	q.lifetimeError += amount
}

// ResetRoundStats zeroes the round counters. Lifetime counters are kept.
func (q *Question) ResetRoundStats() {
	q.roundCorrect = 0
	q.roundError = 0
}

func (q *Question) RoundCorrect() int    { return q.roundCorrect }
func (q *Question) RoundError() int      { return q.roundError }
func (q *Question) LifetimeCorrect() int { return q.lifetimeCorrect }
func (q *Question) LifetimeError() int   { return q.lifetimeError }
