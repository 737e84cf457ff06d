package elastic

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Transport performs the network round trip for a dispatched Request.
// Implementations return a *ResponseError for non-2xx responses.
type Transport interface {
	Perform(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Perform calls f(ctx, req).
func (f TransportFunc) Perform(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// HTTPDoer captures the subset of *http.Client the HTTP transport relies on.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPTransport sends requests to a single base URL over HTTP with JSON bodies.
type HTTPTransport struct {
	baseURL  *url.URL
	client   HTTPDoer
	header   http.Header
	username string
	password string
}

// HTTPTransportConfig configures NewHTTPTransport.
type HTTPTransportConfig struct {
	URL      string      // default: http://localhost:9200
	Client   HTTPDoer    // default: http.DefaultClient
	Header   http.Header // sent with every request
	Username string
	Password string
}

// DefaultURL is used when no URL is configured.
const DefaultURL = "http://localhost:9200"

// NewHTTPTransport validates the configuration and returns a transport.
func NewHTTPTransport(cfg HTTPTransportConfig) (*HTTPTransport, error) {
	raw := cfg.URL
	if raw == "" {
		raw = DefaultURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse url %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.User != nil && cfg.Username == "" {
		cfg.Username = u.User.Username()
		cfg.Password, _ = u.User.Password()
		u.User = nil
	}
	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{
		baseURL:  u,
		client:   client,
		header:   cfg.Header.Clone(),
		username: cfg.Username,
		password: cfg.Password,
	}, nil
}

// Perform implements Transport.
func (t *HTTPTransport) Perform(ctx context.Context, req *Request) (*Response, error) {
	target, err := t.url(req)
	if err != nil {
		return nil, err
	}

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vs := range t.header {
		httpReq.Header[k] = append([]string(nil), vs...)
	}
	for k, vs := range req.Header {
		httpReq.Header[k] = append([]string(nil), vs...)
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	if t.username != "" {
		httpReq.SetBasicAuth(t.username, t.password)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	var decoded any
	if req.Method != http.MethodHead {
		decoded, err = decodeBody(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ResponseError{Status: resp.StatusCode, Body: decoded}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       decoded,
	}, nil
}

// url joins the base URL with the request's pre-escaped path and params.
func (t *HTTPTransport) url(req *Request) (string, error) {
	var b strings.Builder
	b.WriteString(strings.TrimRight(t.baseURL.String(), "/"))
	b.WriteByte('/')
	b.WriteString(req.Path)
	if len(req.Params) > 0 {
		b.WriteByte('?')
		b.WriteString(req.Params.Encode())
	}
	if _, err := url.Parse(b.String()); err != nil {
		return "", fmt.Errorf("build url: %w", err)
	}
	return b.String(), nil
}
