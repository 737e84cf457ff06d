// Package elastictest provides test helpers for code built on the elastic client.
package elastictest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bjaus/elastic"
)

// Reply is one queued outcome of a Recorder.
type Reply struct {
	Response *elastic.Response
	Err      error
}

// OK replies with a 200 and the given decoded body.
func OK(body any) Reply {
	return Reply{Response: &elastic.Response{StatusCode: http.StatusOK, Header: make(http.Header), Body: body}}
}

// Status replies with the given status. Codes outside 2xx produce a
// *elastic.ResponseError, as the HTTP transport would.
func Status(code int, body any) Reply {
	if code < 200 || code > 299 {
		return Reply{Err: &elastic.ResponseError{Status: code, Body: body}}
	}
	return Reply{Response: &elastic.Response{StatusCode: code, Header: make(http.Header), Body: body}}
}

// Fail replies with an arbitrary transport error.
func Fail(err error) Reply {
	return Reply{Err: err}
}

// Recorder is a Transport spy. It records every request and answers from a
// queue of replies; once the queue is empty it answers 200 with a nil body.
type Recorder struct {
	mu       sync.Mutex
	replies  []Reply
	requests []*elastic.Request
}

// NewRecorder returns a Recorder seeded with the replies to return, in order.
func NewRecorder(replies ...Reply) *Recorder {
	return &Recorder{replies: append([]Reply(nil), replies...)}
}

// Perform implements elastic.Transport.
func (r *Recorder) Perform(_ context.Context, req *elastic.Request) (*elastic.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, req)
	if len(r.replies) == 0 {
		return &elastic.Response{StatusCode: http.StatusOK, Header: make(http.Header)}, nil
	}
	reply := r.replies[0]
	r.replies = r.replies[1:]
	return reply.Response, reply.Err
}

// Requests returns the requests captured so far.
func (r *Recorder) Requests() []*elastic.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*elastic.Request(nil), r.requests...)
}

// Calls returns the number of requests captured so far.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

// Last returns the most recent request, or nil if none was made.
func (r *Recorder) Last() *elastic.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return nil
	}
	return r.requests[len(r.requests)-1]
}

var _ elastic.Transport = (*Recorder)(nil)

// NewClient builds a client whose transport is rec.
func NewClient(t testing.TB, rec *Recorder, opts ...elastic.Option) *elastic.Client {
	t.Helper()
	c, err := elastic.New(append([]elastic.Option{elastic.WithTransport(rec)}, opts...)...)
	if err != nil {
		t.Fatalf("elastictest: new client: %v", err)
	}
	return c
}

// NewServer starts an httptest.Server running h and returns a client that
// talks to it over the default HTTP transport.
func NewServer(t testing.TB, h http.Handler, opts ...elastic.Option) *elastic.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := elastic.New(append([]elastic.Option{elastic.WithURL(srv.URL)}, opts...)...)
	if err != nil {
		t.Fatalf("elastictest: new client: %v", err)
	}
	return c
}
