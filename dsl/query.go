package dsl

// Query is the container a configuration block receives. Each method
// installs one clause, replacing any earlier one, and returns it for further
// configuration.
type Query struct {
	clause Clause
}

// NewQuery returns an empty query container.
func NewQuery() *Query { return &Query{} }

// Set installs an already-built clause.
func (q *Query) Set(c Clause) *Query {
	q.clause = present(c)
	return q
}

// Match installs a match query.
func (q *Query) Match(field string, value any) *Match { return install(q, NewMatch(field, value)) }

// MatchAll installs a match_all query.
func (q *Query) MatchAll() *MatchAll { return install(q, NewMatchAll()) }

// Term installs a term query.
func (q *Query) Term(field string, value any) *Term { return install(q, NewTerm(field, value)) }

// Terms installs a terms query.
func (q *Query) Terms(field string, values ...any) *Terms { return install(q, NewTerms(field, values...)) }

// Range installs a range query.
func (q *Query) Range(field string) *Range { return install(q, NewRange(field)) }

// Exists installs an exists query.
func (q *Query) Exists(field string) *Exists { return install(q, NewExists(field)) }

// Ids installs an ids query.
func (q *Query) Ids(ids ...string) *Ids { return install(q, NewIds(ids...)) }

// Bool installs a bool query.
func (q *Query) Bool() *Bool { return install(q, NewBool()) }

// ConstantScore installs a constant_score query.
func (q *Query) ConstantScore() *ConstantScore { return install(q, NewConstantScore()) }

// HasParent installs a has_parent query.
func (q *Query) HasParent() *HasParent { return install(q, NewHasParent()) }

// HasChild installs a has_child query.
func (q *Query) HasChild() *HasChild { return install(q, NewHasChild()) }

// Nested installs a nested query.
func (q *Query) Nested(path string) *Nested { return install(q, NewNested(path)) }

// Map serialises the installed clause. An empty container serialises to an
// empty map.
func (q *Query) Map() map[string]any {
	if q.clause == nil {
		return map[string]any{}
	}
	return q.clause.Map()
}

// MarshalJSON implements json.Marshaler.
func (q *Query) MarshalJSON() ([]byte, error) { return marshal(q) }

// Filter is the container for filter-context blocks. It accepts the clauses
// that make sense without scoring.
type Filter struct {
	clause Clause
}

// NewFilter returns an empty filter container.
func NewFilter() *Filter { return &Filter{} }

// Set installs an already-built clause.
func (f *Filter) Set(c Clause) *Filter {
	f.clause = present(c)
	return f
}

// Term installs a term filter.
func (f *Filter) Term(field string, value any) *Term { return install(f, NewTerm(field, value)) }

// Terms installs a terms filter.
func (f *Filter) Terms(field string, values ...any) *Terms { return install(f, NewTerms(field, values...)) }

// Range installs a range filter.
func (f *Filter) Range(field string) *Range { return install(f, NewRange(field)) }

// Exists installs an exists filter.
func (f *Filter) Exists(field string) *Exists { return install(f, NewExists(field)) }

// Ids installs an ids filter.
func (f *Filter) Ids(ids ...string) *Ids { return install(f, NewIds(ids...)) }

// Bool installs a bool filter.
func (f *Filter) Bool() *Bool { return install(f, NewBool()) }

// Map serialises the installed clause.
func (f *Filter) Map() map[string]any {
	if f.clause == nil {
		return map[string]any{}
	}
	return f.clause.Map()
}

// MarshalJSON implements json.Marshaler.
func (f *Filter) MarshalJSON() ([]byte, error) { return marshal(f) }

type container interface {
	set(c Clause)
}

func (q *Query) set(c Clause)  { q.clause = present(c) }
func (f *Filter) set(c Clause) { f.clause = present(c) }

func install[C Clause](into container, c C) C {
	into.set(c)
	return c
}

// buildQuery runs a configuration block against a fresh container.
func buildQuery(fn func(*Query)) *Query {
	q := NewQuery()
	if fn != nil {
		fn(q)
	}
	return q
}

func buildFilter(fn func(*Filter)) *Filter {
	f := NewFilter()
	if fn != nil {
		fn(f)
	}
	return f
}

var (
	_ Clause = (*Query)(nil)
	_ Clause = (*Filter)(nil)
)
