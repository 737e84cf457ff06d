package dsl

import "slices"

// Term matches documents whose field contains the exact value.
type Term struct {
	field string
	value any
	boost *float64
}

// NewTerm returns a term query.
func NewTerm(field string, value any) *Term { return &Term{field: field, value: value} }

// Boost sets the query boost.
func (t *Term) Boost(b float64) *Term {
	t.boost = ptr(b)
	return t
}

// Map implements Clause.
func (t *Term) Map() map[string]any {
	if t.boost == nil {
		return named("term", map[string]any{t.field: copyValue(t.value)})
	}
	return named("term", map[string]any{t.field: map[string]any{"value": copyValue(t.value), "boost": *t.boost}})
}

// MarshalJSON implements json.Marshaler.
func (t *Term) MarshalJSON() ([]byte, error) { return marshal(t) }

// Terms matches documents whose field contains any of the values.
type Terms struct {
	field  string
	values []any
	boost  *float64
}

// NewTerms returns a terms query.
func NewTerms(field string, values ...any) *Terms {
	return &Terms{field: field, values: slices.Clone(values)}
}

// Values appends values to match.
func (t *Terms) Values(values ...any) *Terms {
	t.values = append(t.values, values...)
	return t
}

// Boost sets the query boost.
func (t *Terms) Boost(b float64) *Terms {
	t.boost = ptr(b)
	return t
}

// Map implements Clause.
func (t *Terms) Map() map[string]any {
	values, _ := copyValue(t.values).([]any)
	if values == nil {
		values = []any{}
	}
	body := map[string]any{t.field: values}
	put(body, "boost", t.boost)
	return named("terms", body)
}

// MarshalJSON implements json.Marshaler.
func (t *Terms) MarshalJSON() ([]byte, error) { return marshal(t) }

// Range matches documents whose field falls within bounds.
type Range struct {
	field string

	gt, gte, lt, lte any
	format           *string
	timeZone         *string
	boost            *float64
}

// NewRange returns a range query on field.
func NewRange(field string) *Range { return &Range{field: field} }

// Gt sets an exclusive lower bound.
func (r *Range) Gt(v any) *Range {
	r.gt = v
	return r
}

// Gte sets an inclusive lower bound.
func (r *Range) Gte(v any) *Range {
	r.gte = v
	return r
}

// Lt sets an exclusive upper bound.
func (r *Range) Lt(v any) *Range {
	r.lt = v
	return r
}

// Lte sets an inclusive upper bound.
func (r *Range) Lte(v any) *Range {
	r.lte = v
	return r
}

// Format sets the date format used to parse bounds.
func (r *Range) Format(f string) *Range {
	r.format = ptr(f)
	return r
}

// TimeZone sets the time zone used to parse date bounds.
func (r *Range) TimeZone(tz string) *Range {
	r.timeZone = ptr(tz)
	return r
}

// Boost sets the query boost.
func (r *Range) Boost(b float64) *Range {
	r.boost = ptr(b)
	return r
}

// Map implements Clause.
func (r *Range) Map() map[string]any {
	opts := map[string]any{}
	for key, v := range map[string]any{"gt": r.gt, "gte": r.gte, "lt": r.lt, "lte": r.lte} {
		if v != nil {
			opts[key] = copyValue(v)
		}
	}
	put(opts, "format", r.format)
	put(opts, "time_zone", r.timeZone)
	put(opts, "boost", r.boost)
	return named("range", map[string]any{r.field: opts})
}

// MarshalJSON implements json.Marshaler.
func (r *Range) MarshalJSON() ([]byte, error) { return marshal(r) }

// Exists matches documents that have a value for field.
type Exists struct {
	field string
}

// NewExists returns an exists query.
func NewExists(field string) *Exists { return &Exists{field: field} }

// Map implements Clause.
func (e *Exists) Map() map[string]any {
	return named("exists", map[string]any{"field": e.field})
}

// MarshalJSON implements json.Marshaler.
func (e *Exists) MarshalJSON() ([]byte, error) { return marshal(e) }

// Ids matches documents by id.
type Ids struct {
	values []string
}

// NewIds returns an ids query.
func NewIds(ids ...string) *Ids { return &Ids{values: slices.Clone(ids)} }

// Map implements Clause.
func (i *Ids) Map() map[string]any {
	values := slices.Clone(i.values)
	if values == nil {
		values = []string{}
	}
	return named("ids", map[string]any{"values": values})
}

// MarshalJSON implements json.Marshaler.
func (i *Ids) MarshalJSON() ([]byte, error) { return marshal(i) }

var (
	_ Clause = (*Term)(nil)
	_ Clause = (*Terms)(nil)
	_ Clause = (*Range)(nil)
	_ Clause = (*Exists)(nil)
	_ Clause = (*Ids)(nil)
)
