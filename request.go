package elastic

import (
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Args is the named-argument bag every action accepts.
type Args map[string]any

// Reserved argument names. They are consumed by the dispatcher and never
// sent as query parameters.
const (
	argBody   = "body"
	argIgnore = "ignore"
)

// Request is a single dispatched call, built per invocation and handed to the
// Transport.
type Request struct {
	// Action is the registry id of the endpoint (e.g. "indices.split").
	Action string
	Method string
	// Path is already escaped and carries no leading slash.
	Path   string
	Params url.Values
	Header http.Header
	Body   any
}

// Response is what a Transport returns for a successful round trip.
type Response struct {
	StatusCode int
	Header     http.Header
	// Body is the decoded JSON document, or nil for HEAD and empty responses.
	Body any
}

// clone returns a shallow copy so consumed keys can be removed without
// touching the caller's map.
func (a Args) clone() Args {
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// take removes and returns the named argument.
func (a Args) take(name string) any {
	v := a[name]
	delete(a, name)
	return v
}

// require checks that every named argument is present and non-empty.
func (a Args) require(names ...string) error {
	for _, name := range names {
		if isEmpty(a[name]) {
			return missingArgument(name)
		}
	}
	return nil
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return rv.Len() == 0
	case reflect.Slice, reflect.Array:
		// A list whose items are all empty renders as an empty segment.
		for i := range rv.Len() {
			if !isEmpty(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// ignores404 reports whether the "ignore" argument lists 404. It accepts an
// int, a string ("404" or "400,404") or a slice of either.
func ignores404(a Args) bool {
	v, ok := a[argIgnore]
	if !ok || v == nil {
		return false
	}
	for _, code := range ignoreCodes(v) {
		if code == http.StatusNotFound {
			return true
		}
	}
	return false
}

func ignoreCodes(v any) []int {
	switch t := v.(type) {
	case int:
		return []int{t}
	case string:
		var out []int
		for part := range strings.SplitSeq(t, ",") {
			if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				out = append(out, n)
			}
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		if n, ok := asInt(rv); ok {
			return []int{n}
		}
		return nil
	}
	var out []int
	for i := range rv.Len() {
		out = append(out, ignoreCodes(rv.Index(i).Interface())...)
	}
	return out
}

func asInt(rv reflect.Value) (int, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return int(rv.Float()), true
	}
	return 0, false
}
