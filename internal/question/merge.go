package question

import "sort"

// Merge folds qs by Text. Questions sharing a text collapse into one whose
// answers and locations are the union of all inputs. The result is sorted by
// text and does not depend on the order of qs.
//
// The returned questions are fresh values; the inputs are not modified.
func Merge(qs ...*Question) []*Question {
	byText := make(map[string]*Question, len(qs))
	for _, q := range qs {
		if q == nil {
			continue
		}
		merged, ok := byText[q.Text]
		if !ok {
			merged = &Question{Text: q.Text}
			byText[q.Text] = merged
		}
		merged.Absorb(q)
	}

	out := make([]*Question, 0, len(byText))
	for _, q := range byText {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Text < out[j].Text })
	return out
}
