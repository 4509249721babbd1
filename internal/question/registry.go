package question

// Registry interns questions by text so that every group and every round
// refers to the same *Question for a given prompt. Scores recorded through one
// holder are therefore visible through all of them, and they survive a group
// being deactivated and activated again.
//
// Answers and locations are not shared that way: each owner (a group) binds
// its own contribution, and a canonical question only carries the union of
// the contributions currently bound.
type Registry struct {
	byText map[string]*Question
	owners map[string]map[string]*Question
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byText: make(map[string]*Question),
		owners: make(map[string]map[string]*Question),
	}
}

// Bind replaces everything owner contributed with qs and returns the
// canonical question for each of them, in order and without duplicates.
func (r *Registry) Bind(owner string, qs []*Question) []*Question {
	touched := make(map[string]struct{})
	for text := range r.owners[owner] {
		touched[text] = struct{}{}
	}

	contrib := make(map[string]*Question, len(qs))
	out := make([]*Question, 0, len(qs))
	for _, q := range qs {
		if q == nil {
			continue
		}
		c, seen := contrib[q.Text]
		if !seen {
			c = &Question{Text: q.Text}
			contrib[q.Text] = c
			out = append(out, r.canonical(q.Text))
		}
		c.Absorb(q)
		touched[q.Text] = struct{}{}
	}
	r.owners[owner] = contrib

	r.rebuild(touched)
	return out
}

// Release drops everything owner contributed. Canonical questions keep their
// scores; their answers and locations shrink to what other owners still
// provide.
func (r *Registry) Release(owner string) {
	prev, ok := r.owners[owner]
	if !ok {
		return
	}
	delete(r.owners, owner)

	touched := make(map[string]struct{}, len(prev))
	for text := range prev {
		touched[text] = struct{}{}
	}
	r.rebuild(touched)
}

func (r *Registry) canonical(text string) *Question {
	q, ok := r.byText[text]
	if !ok {
		q = &Question{Text: text}
		r.byText[text] = q
	}
	return q
}

func (r *Registry) rebuild(texts map[string]struct{}) {
	for text := range texts {
		q := r.canonical(text)
		q.clearContent()
		for _, contrib := range r.owners {
			if c, ok := contrib[text]; ok {
				q.Absorb(c)
			}
		}
	}
}

// Lookup returns the canonical question for text, if any.
func (r *Registry) Lookup(text string) (*Question, bool) {
	q, ok := r.byText[text]
	return q, ok
}

// Len returns the number of distinct questions seen.
func (r *Registry) Len() int {
	return len(r.byText)
}
