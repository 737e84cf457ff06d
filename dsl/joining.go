package dsl

// HasParent returns child documents whose parent matches a query.
type HasParent struct {
	parentType     *string
	scoreMode      *string
	ignoreUnmapped *bool
	innerHits      map[string]any
	query          Clause
}

// NewHasParent returns an empty has_parent query.
func NewHasParent() *HasParent { return &HasParent{} }

// ParentType sets the parent relation name.
func (h *HasParent) ParentType(t string) *HasParent {
	h.parentType = ptr(t)
	return h
}

// ScoreMode sets how the parent score is propagated ("none", "score", "max", ...).
func (h *HasParent) ScoreMode(m string) *HasParent {
	h.scoreMode = ptr(m)
	return h
}

// IgnoreUnmapped makes an unmapped parent type match nothing instead of failing.
func (h *HasParent) IgnoreUnmapped(v bool) *HasParent {
	h.ignoreUnmapped = ptr(v)
	return h
}

// InnerHits requests the matching parents alongside each hit.
func (h *HasParent) InnerHits(opts map[string]any) *HasParent {
	h.innerHits = cloneInnerHits(opts)
	return h
}

// Query sets the parent query. Pass Raw for a literal structure.
func (h *HasParent) Query(q Clause) *HasParent {
	h.query = present(q)
	return h
}

// QueryFunc sets the parent query from a configuration block.
func (h *HasParent) QueryFunc(fn func(*Query)) *HasParent { return h.Query(buildQuery(fn)) }

// Map implements Clause.
func (h *HasParent) Map() map[string]any {
	body := map[string]any{}
	put(body, "parent_type", h.parentType)
	put(body, "score_mode", h.scoreMode)
	put(body, "ignore_unmapped", h.ignoreUnmapped)
	if h.innerHits != nil {
		body["inner_hits"] = cloneInnerHits(h.innerHits)
	}
	if h.query != nil {
		body["query"] = h.query.Map()
	}
	return named("has_parent", body)
}

// MarshalJSON implements json.Marshaler.
func (h *HasParent) MarshalJSON() ([]byte, error) { return marshal(h) }

// HasChild returns parent documents whose children match a query.
type HasChild struct {
	childType      *string
	scoreMode      *string
	minChildren    *int
	maxChildren    *int
	ignoreUnmapped *bool
	innerHits      map[string]any
	query          Clause
}

// NewHasChild returns an empty has_child query.
func NewHasChild() *HasChild { return &HasChild{} }

// Type sets the child relation name.
func (h *HasChild) Type(t string) *HasChild {
	h.childType = ptr(t)
	return h
}

// ScoreMode sets how child scores are aggregated ("none", "avg", "max", "min", "sum").
func (h *HasChild) ScoreMode(m string) *HasChild {
	h.scoreMode = ptr(m)
	return h
}

// MinChildren sets the minimum number of matching children.
func (h *HasChild) MinChildren(n int) *HasChild {
	h.minChildren = ptr(n)
	return h
}

// MaxChildren sets the maximum number of matching children.
func (h *HasChild) MaxChildren(n int) *HasChild {
	h.maxChildren = ptr(n)
	return h
}

// IgnoreUnmapped makes an unmapped child type match nothing instead of failing.
func (h *HasChild) IgnoreUnmapped(v bool) *HasChild {
	h.ignoreUnmapped = ptr(v)
	return h
}

// InnerHits requests the matching children alongside each hit.
func (h *HasChild) InnerHits(opts map[string]any) *HasChild {
	h.innerHits = cloneInnerHits(opts)
	return h
}

// Query sets the child query.
func (h *HasChild) Query(q Clause) *HasChild {
	h.query = present(q)
	return h
}

// QueryFunc sets the child query from a configuration block.
func (h *HasChild) QueryFunc(fn func(*Query)) *HasChild { return h.Query(buildQuery(fn)) }

// Map implements Clause.
func (h *HasChild) Map() map[string]any {
	body := map[string]any{}
	put(body, "type", h.childType)
	put(body, "score_mode", h.scoreMode)
	put(body, "min_children", h.minChildren)
	put(body, "max_children", h.maxChildren)
	put(body, "ignore_unmapped", h.ignoreUnmapped)
	if h.innerHits != nil {
		body["inner_hits"] = cloneInnerHits(h.innerHits)
	}
	if h.query != nil {
		body["query"] = h.query.Map()
	}
	return named("has_child", body)
}

// MarshalJSON implements json.Marshaler.
func (h *HasChild) MarshalJSON() ([]byte, error) { return marshal(h) }

// Nested queries objects indexed as nested documents under path.
type Nested struct {
	path           string
	scoreMode      *string
	ignoreUnmapped *bool
	innerHits      map[string]any
	query          Clause
}

// NewNested returns a nested query on path.
func NewNested(path string) *Nested { return &Nested{path: path} }

// ScoreMode sets how nested scores are combined ("avg", "max", "min", "none", "sum").
func (n *Nested) ScoreMode(m string) *Nested {
	n.scoreMode = ptr(m)
	return n
}

// IgnoreUnmapped makes an unmapped path match nothing instead of failing.
func (n *Nested) IgnoreUnmapped(v bool) *Nested {
	n.ignoreUnmapped = ptr(v)
	return n
}

// InnerHits requests the matching nested objects alongside each hit.
func (n *Nested) InnerHits(opts map[string]any) *Nested {
	n.innerHits = cloneInnerHits(opts)
	return n
}

// Query sets the nested query.
func (n *Nested) Query(q Clause) *Nested {
	n.query = present(q)
	return n
}

// QueryFunc sets the nested query from a configuration block.
func (n *Nested) QueryFunc(fn func(*Query)) *Nested { return n.Query(buildQuery(fn)) }

// Map implements Clause.
func (n *Nested) Map() map[string]any {
	body := map[string]any{"path": n.path}
	put(body, "score_mode", n.scoreMode)
	put(body, "ignore_unmapped", n.ignoreUnmapped)
	if n.innerHits != nil {
		body["inner_hits"] = cloneInnerHits(n.innerHits)
	}
	if n.query != nil {
		body["query"] = n.query.Map()
	}
	return named("nested", body)
}

// MarshalJSON implements json.Marshaler.
func (n *Nested) MarshalJSON() ([]byte, error) { return marshal(n) }

var (
	_ Clause = (*HasParent)(nil)
	_ Clause = (*HasChild)(nil)
	_ Clause = (*Nested)(nil)
)
