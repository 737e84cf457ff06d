package elastic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Client dispatches actions to a Transport. It is safe for concurrent use
// once constructed.
type Client struct {
	transport Transport
	registry  *Registry
	logger    *slog.Logger

	httpCfg    HTTPTransportConfig
	middleware []TransportMiddleware

	// Indices groups the index management actions.
	Indices *IndicesService
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the default HTTP transport. URL, HTTP client,
// header and auth options are ignored when a transport is supplied.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithURL sets the base URL of the default HTTP transport.
func WithURL(url string) Option {
	return func(c *Client) {
		c.httpCfg.URL = url
	}
}

// WithHTTPClient sets the HTTP client used by the default transport.
func WithHTTPClient(d HTTPDoer) Option {
	return func(c *Client) {
		c.httpCfg.Client = d
	}
}

// WithBasicAuth sets credentials for the default transport.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.httpCfg.Username = username
		c.httpCfg.Password = password
	}
}

// WithHeader adds a header sent with every request by the default transport.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if c.httpCfg.Header == nil {
			c.httpCfg.Header = make(http.Header)
		}
		c.httpCfg.Header.Add(key, value)
	}
}

// WithRegistry sets the params registry. The default is DefaultRegistry().
func WithRegistry(r *Registry) Option {
	return func(c *Client) {
		c.registry = r
	}
}

// WithLogger sets the logger used for per-action debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMiddleware wraps the transport. Middleware is applied in the order added.
func WithMiddleware(mw ...TransportMiddleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, mw...)
	}
}

// New creates a Client with the given options.
func New(opts ...Option) (*Client, error) {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		t, err := NewHTTPTransport(c.httpCfg)
		if err != nil {
			return nil, err
		}
		c.transport = t
	}
	c.transport = Chain(c.transport, c.middleware...)

	if c.registry == nil {
		c.registry = DefaultRegistry()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	c.Indices = &IndicesService{c: c}
	return c, nil
}

// Registry returns the params registry the client filters arguments with.
func (c *Client) Registry() *Registry { return c.registry }

// Perform sends a prepared request through the client's transport and
// returns the response body. It is the building block for actions this
// package does not wrap.
func (c *Client) Perform(ctx context.Context, req *Request) (any, error) {
	c.logger.DebugContext(ctx, "dispatch",
		"action", req.Action,
		"method", req.Method,
		"path", req.Path,
		"params", req.Params.Encode(),
	)
	resp, err := c.transport.Perform(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Action, err)
	}
	return resp.Body, nil
}

// performIgnoring is Perform, except a not-found failure becomes the
// NotFound result when the caller asked to ignore 404.
func (c *Client) performIgnoring(ctx context.Context, req *Request, args Args) (any, error) {
	body, err := c.Perform(ctx, req)
	if err != nil && errors.Is(err, ErrNotFound) && ignores404(args) {
		return NotFound, nil
	}
	return body, err
}

// performExists turns a HEAD round trip into a boolean.
func (c *Client) performExists(ctx context.Context, req *Request) (bool, error) {
	_, err := c.Perform(ctx, req)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// newRequest filters args against the action's allow-list and assembles a
// Request. args must already have the path arguments removed.
func (c *Client) newRequest(action, method, path string, args Args) (*Request, error) {
	params, err := c.registry.Filter(action, args)
	if err != nil {
		return nil, err
	}
	return &Request{
		Action: action,
		Method: method,
		Path:   path,
		Params: params,
		Body:   args[argBody],
	}, nil
}
