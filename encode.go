package elastic

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// encodeBody serialises a request body. Strings and byte slices are sent as
// they are so callers can pass pre-encoded JSON or NDJSON.
func encodeBody(v any) (io.Reader, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		return bytes.NewBufferString(t), nil
	case []byte:
		return bytes.NewReader(t), nil
	case io.Reader:
		return t, nil
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return &buf, nil
}

// decodeBody decodes a JSON response. An empty body decodes to nil; a body
// that is not JSON is returned as a string.
func decodeBody(r io.Reader) (any, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return string(raw), nil
		}
		return nil, err
	}
	return v, nil
}
