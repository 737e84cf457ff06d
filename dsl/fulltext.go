package dsl

// Match is a full-text match query on one field.
// Without options it serialises in the short form {"match": {field: value}}.
type Match struct {
	field string
	query any

	operator           *string
	fuzziness          *string
	analyzer           *string
	minimumShouldMatch *string
	zeroTermsQuery     *string
	boost              *float64
}

// NewMatch returns a match query for value on field.
func NewMatch(field string, value any) *Match {
	return &Match{field: field, query: value}
}

// Operator sets "and" or "or" for combining analysed terms.
func (m *Match) Operator(op string) *Match {
	m.operator = ptr(op)
	return m
}

// Fuzziness sets the allowed edit distance ("AUTO", "1", ...).
func (m *Match) Fuzziness(f string) *Match {
	m.fuzziness = ptr(f)
	return m
}

// Analyzer overrides the search analyzer.
func (m *Match) Analyzer(a string) *Match {
	m.analyzer = ptr(a)
	return m
}

// MinimumShouldMatch sets how many terms must match ("2", "75%").
func (m *Match) MinimumShouldMatch(v string) *Match {
	m.minimumShouldMatch = ptr(v)
	return m
}

// ZeroTermsQuery sets the behaviour when the analyser removes every term.
func (m *Match) ZeroTermsQuery(v string) *Match {
	m.zeroTermsQuery = ptr(v)
	return m
}

// Boost sets the query boost.
func (m *Match) Boost(b float64) *Match {
	m.boost = ptr(b)
	return m
}

// Map implements Clause.
func (m *Match) Map() map[string]any {
	opts := map[string]any{}
	put(opts, "operator", m.operator)
	put(opts, "fuzziness", m.fuzziness)
	put(opts, "analyzer", m.analyzer)
	put(opts, "minimum_should_match", m.minimumShouldMatch)
	put(opts, "zero_terms_query", m.zeroTermsQuery)
	put(opts, "boost", m.boost)
	if len(opts) == 0 {
		return named("match", map[string]any{m.field: copyValue(m.query)})
	}
	opts["query"] = copyValue(m.query)
	return named("match", map[string]any{m.field: opts})
}

// MarshalJSON implements json.Marshaler.
func (m *Match) MarshalJSON() ([]byte, error) { return marshal(m) }

// MatchAll matches every document.
type MatchAll struct {
	boost *float64
}

// NewMatchAll returns a match_all query.
func NewMatchAll() *MatchAll { return &MatchAll{} }

// Boost sets the query boost.
func (m *MatchAll) Boost(b float64) *MatchAll {
	m.boost = ptr(b)
	return m
}

// Map implements Clause.
func (m *MatchAll) Map() map[string]any {
	body := map[string]any{}
	put(body, "boost", m.boost)
	return named("match_all", body)
}

// MarshalJSON implements json.Marshaler.
func (m *MatchAll) MarshalJSON() ([]byte, error) { return marshal(m) }

var (
	_ Clause = (*Match)(nil)
	_ Clause = (*MatchAll)(nil)
)
