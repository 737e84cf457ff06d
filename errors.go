package elastic

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors.
var (
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownAction   = errors.New("unknown action")
	ErrNotFound        = errors.New("not found")
)

// StatusCoder is implemented by errors that carry an HTTP status code.
type StatusCoder interface {
	StatusCode() int
}

// ArgumentError reports a caller mistake detected before any request is sent.
type ArgumentError struct {
	Name   string
	Reason string
	err    error
}

// Error returns a message naming the offending argument.
func (e *ArgumentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("required argument '%s' missing", e.Name)
	}
	return fmt.Sprintf("argument '%s': %s", e.Name, e.Reason)
}

// Unwrap returns ErrMissingArgument or ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error { return e.err }

func missingArgument(name string) error {
	return &ArgumentError{Name: name, err: ErrMissingArgument}
}

func invalidArgument(name, format string, args ...any) error {
	return &ArgumentError{Name: name, Reason: fmt.Sprintf(format, args...), err: ErrInvalidArgument}
}

// ResponseError is returned by transports for non-2xx responses.
type ResponseError struct {
	Status int
	Body   any
}

// Error returns the status line followed by the server's reason, if any.
func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
	if reason := errorReason(e.Body); reason != "" {
		msg += ": " + reason
	}
	return msg
}

// StatusCode returns the HTTP status code.
func (e *ResponseError) StatusCode() int { return e.Status }

// Is reports whether the error matches target. A 404 response matches ErrNotFound.
func (e *ResponseError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// errorReason pulls a message out of the engine's error document, which is
// either {"error": "text"} or {"error": {"reason": "text", ...}}.
func errorReason(body any) string {
	switch b := body.(type) {
	case string:
		return b
	case map[string]any:
		switch e := b["error"].(type) {
		case string:
			return e
		case map[string]any:
			if r, ok := e["reason"].(string); ok {
				return r
			}
		}
	}
	return ""
}

// ErrorStatus extracts the HTTP status code from an error. Returns 0 if the
// error does not implement StatusCoder.
func ErrorStatus(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return 0
}

// Absent is the result type returned in place of a response body when a
// not-found response was ignored.
type Absent struct{}

// NotFound is the result of an action whose 404 was ignored.
var NotFound = Absent{}

// IsNotFound reports whether an action result is the NotFound sentinel.
func IsNotFound(v any) bool {
	_, ok := v.(Absent)
	return ok
}
