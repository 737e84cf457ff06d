package elastic

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// escape percent-encodes a single path segment. Wildcards are left readable
// since the engine treats "*" literally in index expressions.
func escape(v any) string {
	s := segmentString(v)
	if s == "" {
		return ""
	}
	return strings.ReplaceAll(url.PathEscape(s), "%2A", "*")
}

// listify renders a list-valued segment as one comma-joined segment, escaping
// each item. Scalars are escaped as-is.
func listify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return escape(t)
	case []string:
		parts := make([]string, 0, len(t))
		for _, s := range t {
			if s != "" {
				parts = append(parts, escape(s))
			}
		}
		return strings.Join(parts, ",")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return escape(v)
	}
	parts := make([]string, 0, rv.Len())
	for i := range rv.Len() {
		if s := escape(rv.Index(i).Interface()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ",")
}

// pathify joins already-escaped segments with "/", dropping empty ones.
func pathify(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}

func segmentString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
