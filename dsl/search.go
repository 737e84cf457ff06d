package dsl

import "slices"

// Search is a complete search request body. Unlike the clause builders its
// Map has no wrapping name key.
type Search struct {
	query          Clause
	postFilter     Clause
	aggs           subAggs
	size           *int
	from           *int
	sort           []sortField
	source         []string
	sourceSet      bool
	trackTotalHits *bool
}

type sortField struct {
	field string
	order string
}

// NewSearch returns an empty search body.
func NewSearch() *Search { return &Search{} }

// Query sets the query.
func (s *Search) Query(q Clause) *Search {
	s.query = present(q)
	return s
}

// QueryFunc sets the query from a configuration block.
func (s *Search) QueryFunc(fn func(*Query)) *Search { return s.Query(buildQuery(fn)) }

// PostFilter sets a filter applied after aggregations are computed.
func (s *Search) PostFilter(f Clause) *Search {
	s.postFilter = present(f)
	return s
}

// PostFilterFunc sets the post filter from a configuration block.
func (s *Search) PostFilterFunc(fn func(*Filter)) *Search { return s.PostFilter(buildFilter(fn)) }

// Agg adds a named aggregation.
func (s *Search) Agg(name string, c Clause) *Search {
	s.aggs.add(name, c)
	return s
}

// Size sets the number of hits returned.
func (s *Search) Size(n int) *Search {
	s.size = ptr(n)
	return s
}

// From sets the offset of the first hit.
func (s *Search) From(n int) *Search {
	s.from = ptr(n)
	return s
}

// Sort appends a sort on field in direction "asc" or "desc".
func (s *Search) Sort(field, order string) *Search {
	s.sort = append(s.sort, sortField{field: field, order: order})
	return s
}

// Source limits the returned _source to fields. With no fields, _source is
// disabled.
func (s *Search) Source(fields ...string) *Search {
	s.source = slices.Clone(fields)
	s.sourceSet = true
	return s
}

// TrackTotalHits controls whether the total hit count is computed exactly.
func (s *Search) TrackTotalHits(v bool) *Search {
	s.trackTotalHits = ptr(v)
	return s
}

// Map implements Clause.
func (s *Search) Map() map[string]any {
	out := map[string]any{}
	if s.query != nil {
		out["query"] = s.query.Map()
	}
	if s.postFilter != nil {
		out["post_filter"] = s.postFilter.Map()
	}
	s.aggs.into(out)
	put(out, "size", s.size)
	put(out, "from", s.from)
	if len(s.sort) > 0 {
		sorts := make([]any, 0, len(s.sort))
		for _, sf := range s.sort {
			sorts = append(sorts, map[string]any{sf.field: map[string]any{"order": sf.order}})
		}
		out["sort"] = sorts
	}
	if s.sourceSet {
		if len(s.source) == 0 {
			out["_source"] = false
		} else {
			out["_source"] = slices.Clone(s.source)
		}
	}
	put(out, "track_total_hits", s.trackTotalHits)
	return out
}

// MarshalJSON implements json.Marshaler.
func (s *Search) MarshalJSON() ([]byte, error) { return marshal(s) }

var _ Clause = (*Search)(nil)
