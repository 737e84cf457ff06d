package dsl

import "maps"

// subAggs holds named sub-aggregations of a bucket aggregation.
type subAggs map[string]Clause

func (s *subAggs) add(name string, c Clause) {
	if c = present(c); c == nil {
		return
	}
	if *s == nil {
		*s = make(subAggs)
	}
	(*s)[name] = c
}

// into serialises the sub-aggregations as a sibling "aggregations" key.
func (s subAggs) into(m map[string]any) {
	if len(s) == 0 {
		return
	}
	out := make(map[string]any, len(s))
	for name, c := range s {
		out[name] = c.Map()
	}
	m["aggregations"] = out
}

// TermsAgg buckets documents by the distinct values of a field.
type TermsAgg struct {
	field       string
	size        *int
	minDocCount *int
	missing     any
	order       map[string]any
	aggs        subAggs
}

// NewTermsAgg returns a terms aggregation on field.
func NewTermsAgg(field string) *TermsAgg { return &TermsAgg{field: field} }

// Size sets the number of buckets returned.
func (a *TermsAgg) Size(n int) *TermsAgg {
	a.size = ptr(n)
	return a
}

// MinDocCount drops buckets with fewer documents.
func (a *TermsAgg) MinDocCount(n int) *TermsAgg {
	a.minDocCount = ptr(n)
	return a
}

// Missing sets the bucket value for documents without the field.
func (a *TermsAgg) Missing(v any) *TermsAgg {
	a.missing = v
	return a
}

// Order sorts buckets by key ("_count", "_key" or a sub-aggregation) in
// direction "asc" or "desc".
func (a *TermsAgg) Order(key, direction string) *TermsAgg {
	a.order = map[string]any{key: direction}
	return a
}

// Agg adds a named sub-aggregation.
func (a *TermsAgg) Agg(name string, c Clause) *TermsAgg {
	a.aggs.add(name, c)
	return a
}

// Map implements Clause.
func (a *TermsAgg) Map() map[string]any {
	body := map[string]any{"field": a.field}
	put(body, "size", a.size)
	put(body, "min_doc_count", a.minDocCount)
	if a.missing != nil {
		body["missing"] = copyValue(a.missing)
	}
	if a.order != nil {
		body["order"] = maps.Clone(a.order)
	}
	out := named("terms", body)
	a.aggs.into(out)
	return out
}

// MarshalJSON implements json.Marshaler.
func (a *TermsAgg) MarshalJSON() ([]byte, error) { return marshal(a) }

// Metric is a single-value metric aggregation over a field.
type Metric struct {
	kind               string
	field              string
	missing            any
	precisionThreshold *int
}

// NewAvg returns an avg aggregation.
func NewAvg(field string) *Metric { return &Metric{kind: "avg", field: field} }

// NewSum returns a sum aggregation.
func NewSum(field string) *Metric { return &Metric{kind: "sum", field: field} }

// NewMin returns a min aggregation.
func NewMin(field string) *Metric { return &Metric{kind: "min", field: field} }

// NewMax returns a max aggregation.
func NewMax(field string) *Metric { return &Metric{kind: "max", field: field} }

// NewValueCount returns a value_count aggregation.
func NewValueCount(field string) *Metric { return &Metric{kind: "value_count", field: field} }

// NewCardinality returns a cardinality aggregation.
func NewCardinality(field string) *Metric { return &Metric{kind: "cardinality", field: field} }

// Missing sets the value used for documents without the field.
func (m *Metric) Missing(v any) *Metric {
	m.missing = v
	return m
}

// PrecisionThreshold tunes the cardinality aggregation; other kinds ignore it.
func (m *Metric) PrecisionThreshold(n int) *Metric {
	m.precisionThreshold = ptr(n)
	return m
}

// Map implements Clause.
func (m *Metric) Map() map[string]any {
	body := map[string]any{"field": m.field}
	if m.missing != nil {
		body["missing"] = copyValue(m.missing)
	}
	if m.kind == "cardinality" {
		put(body, "precision_threshold", m.precisionThreshold)
	}
	return named(m.kind, body)
}

// MarshalJSON implements json.Marshaler.
func (m *Metric) MarshalJSON() ([]byte, error) { return marshal(m) }

// DateHistogram buckets documents by date intervals.
type DateHistogram struct {
	field            string
	calendarInterval *string
	fixedInterval    *string
	format           *string
	timeZone         *string
	minDocCount      *int
	aggs             subAggs
}

// NewDateHistogram returns a date_histogram aggregation on field.
func NewDateHistogram(field string) *DateHistogram { return &DateHistogram{field: field} }

// CalendarInterval sets a calendar-aware interval ("1d", "month", ...).
func (d *DateHistogram) CalendarInterval(v string) *DateHistogram {
	d.calendarInterval = ptr(v)
	return d
}

// FixedInterval sets a fixed interval ("30m", "12h", ...).
func (d *DateHistogram) FixedInterval(v string) *DateHistogram {
	d.fixedInterval = ptr(v)
	return d
}

// Format sets the format of bucket keys.
func (d *DateHistogram) Format(v string) *DateHistogram {
	d.format = ptr(v)
	return d
}

// TimeZone sets the time zone for bucketing.
func (d *DateHistogram) TimeZone(v string) *DateHistogram {
	d.timeZone = ptr(v)
	return d
}

// MinDocCount drops buckets with fewer documents.
func (d *DateHistogram) MinDocCount(n int) *DateHistogram {
	d.minDocCount = ptr(n)
	return d
}

// Agg adds a named sub-aggregation.
func (d *DateHistogram) Agg(name string, c Clause) *DateHistogram {
	d.aggs.add(name, c)
	return d
}

// Map implements Clause.
func (d *DateHistogram) Map() map[string]any {
	body := map[string]any{"field": d.field}
	put(body, "calendar_interval", d.calendarInterval)
	put(body, "fixed_interval", d.fixedInterval)
	put(body, "format", d.format)
	put(body, "time_zone", d.timeZone)
	put(body, "min_doc_count", d.minDocCount)
	out := named("date_histogram", body)
	d.aggs.into(out)
	return out
}

// MarshalJSON implements json.Marshaler.
func (d *DateHistogram) MarshalJSON() ([]byte, error) { return marshal(d) }

// FilterAgg narrows the documents seen by its sub-aggregations to those
// matching a filter.
type FilterAgg struct {
	filter Clause
	aggs   subAggs
}

// NewFilterAgg returns a filter aggregation.
func NewFilterAgg(f Clause) *FilterAgg { return &FilterAgg{filter: present(f)} }

// NewFilterAggFunc returns a filter aggregation built from a configuration block.
func NewFilterAggFunc(fn func(*Filter)) *FilterAgg { return NewFilterAgg(buildFilter(fn)) }

// Agg adds a named sub-aggregation.
func (f *FilterAgg) Agg(name string, c Clause) *FilterAgg {
	f.aggs.add(name, c)
	return f
}

// Map implements Clause.
func (f *FilterAgg) Map() map[string]any {
	filter := map[string]any{"match_all": map[string]any{}}
	if f.filter != nil {
		filter = f.filter.Map()
	}
	out := map[string]any{"filter": filter}
	f.aggs.into(out)
	return out
}

// MarshalJSON implements json.Marshaler.
func (f *FilterAgg) MarshalJSON() ([]byte, error) { return marshal(f) }

var (
	_ Clause = (*TermsAgg)(nil)
	_ Clause = (*Metric)(nil)
	_ Clause = (*DateHistogram)(nil)
	_ Clause = (*FilterAgg)(nil)
)
