package dsl

import (
	"encoding/json"
	"reflect"
	"slices"
)

// Clause is implemented by every builder: it serialises to the nested map
// the engine expects. Map must not modify the receiver.
type Clause interface {
	Map() map[string]any
}

// Raw is a literal, already-built clause. Use it wherever a Clause is
// accepted to pass a structure the builders don't cover.
type Raw map[string]any

// Map returns a deep copy of the literal.
func (r Raw) Map() map[string]any { return copyMap(r) }

// MarshalJSON implements json.Marshaler.
func (r Raw) MarshalJSON() ([]byte, error) { return json.Marshal(map[string]any(r)) }

func ptr[T any](v T) *T { return &v }

// put stores *v under key when the option was set.
func put[T any](m map[string]any, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}

// named wraps a clause body under its DSL name.
func named(name string, body map[string]any) map[string]any {
	return map[string]any{name: body}
}

// mapAll serialises a list of clauses.
func mapAll(cs []Clause) []any {
	out := make([]any, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Map())
	}
	return out
}

func marshal(c Clause) ([]byte, error) { return json.Marshal(c.Map()) }

// present returns c, or nil when c is nil or a typed nil.
func present(c Clause) Clause {
	if c == nil {
		return nil
	}
	switch rv := reflect.ValueOf(c); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
	}
	return c
}

// presentAll drops nil and typed-nil clauses.
func presentAll(cs []Clause) []Clause {
	out := make([]Clause, 0, len(cs))
	for _, c := range cs {
		if c = present(c); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// copyValue deep-copies the JSON-shaped containers a caller may hand in, so
// serialised output shares no mutable state with the builder.
func copyValue(v any) any {
	switch t := v.(type) {
	case Raw:
		return copyMap(t)
	case map[string]any:
		return copyMap(t)
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	case []string:
		return slices.Clone(t)
	}
	return v
}

func copyMap[M ~map[string]any](m M) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

var _ Clause = Raw(nil)
