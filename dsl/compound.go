package dsl

// Bool combines clauses with boolean logic.
type Bool struct {
	must    []Clause
	mustNot []Clause
	should  []Clause
	filter  []Clause

	minimumShouldMatch any
	boost              *float64
}

// NewBool returns an empty bool query.
func NewBool() *Bool { return &Bool{} }

// Must appends clauses that must match and contribute to the score.
func (b *Bool) Must(cs ...Clause) *Bool {
	b.must = append(b.must, presentAll(cs)...)
	return b
}

// MustFunc appends a clause built by fn.
func (b *Bool) MustFunc(fn func(*Query)) *Bool { return b.Must(buildQuery(fn)) }

// MustNot appends clauses that must not match.
func (b *Bool) MustNot(cs ...Clause) *Bool {
	b.mustNot = append(b.mustNot, presentAll(cs)...)
	return b
}

// MustNotFunc appends a clause built by fn.
func (b *Bool) MustNotFunc(fn func(*Query)) *Bool { return b.MustNot(buildQuery(fn)) }

// Should appends clauses of which some should match.
func (b *Bool) Should(cs ...Clause) *Bool {
	b.should = append(b.should, presentAll(cs)...)
	return b
}

// ShouldFunc appends a clause built by fn.
func (b *Bool) ShouldFunc(fn func(*Query)) *Bool { return b.Should(buildQuery(fn)) }

// Filter appends clauses that must match without scoring.
func (b *Bool) Filter(cs ...Clause) *Bool {
	b.filter = append(b.filter, presentAll(cs)...)
	return b
}

// FilterFunc appends a filter clause built by fn.
func (b *Bool) FilterFunc(fn func(*Filter)) *Bool { return b.Filter(buildFilter(fn)) }

// MinimumShouldMatch sets how many should clauses must match (int or string).
func (b *Bool) MinimumShouldMatch(v any) *Bool {
	b.minimumShouldMatch = v
	return b
}

// Boost sets the query boost.
func (b *Bool) Boost(v float64) *Bool {
	b.boost = ptr(v)
	return b
}

// Map implements Clause.
func (b *Bool) Map() map[string]any {
	body := map[string]any{}
	for key, cs := range map[string][]Clause{
		"must":     b.must,
		"must_not": b.mustNot,
		"should":   b.should,
		"filter":   b.filter,
	} {
		if len(cs) > 0 {
			body[key] = mapAll(cs)
		}
	}
	if b.minimumShouldMatch != nil {
		body["minimum_should_match"] = b.minimumShouldMatch
	}
	put(body, "boost", b.boost)
	return named("bool", body)
}

// MarshalJSON implements json.Marshaler.
func (b *Bool) MarshalJSON() ([]byte, error) { return marshal(b) }

// ConstantScore wraps a filter and gives every match the same score.
type ConstantScore struct {
	filter Clause
	boost  *float64
}

// NewConstantScore returns a constant_score query.
func NewConstantScore() *ConstantScore { return &ConstantScore{} }

// Filter sets the wrapped filter.
func (c *ConstantScore) Filter(f Clause) *ConstantScore {
	c.filter = present(f)
	return c
}

// FilterFunc sets the wrapped filter from a configuration block.
func (c *ConstantScore) FilterFunc(fn func(*Filter)) *ConstantScore { return c.Filter(buildFilter(fn)) }

// Boost sets the constant score.
func (c *ConstantScore) Boost(v float64) *ConstantScore {
	c.boost = ptr(v)
	return c
}

// Map implements Clause.
func (c *ConstantScore) Map() map[string]any {
	body := map[string]any{}
	if c.filter != nil {
		body["filter"] = c.filter.Map()
	}
	put(body, "boost", c.boost)
	return named("constant_score", body)
}

// MarshalJSON implements json.Marshaler.
func (c *ConstantScore) MarshalJSON() ([]byte, error) { return marshal(c) }

// cloneInnerHits deep-copies an inner_hits option so serialised output never
// aliases builder state.
func cloneInnerHits(m map[string]any) map[string]any { return copyMap(m) }

var (
	_ Clause = (*Bool)(nil)
	_ Clause = (*ConstantScore)(nil)
)
