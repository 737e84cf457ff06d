package elastic

import (
	"context"
	"net/http"
)

// Index stores a document. Required: "index", "body". With "id" the document
// is PUT at that id; without it the engine assigns one.
func (c *Client) Index(ctx context.Context, args Args) (any, error) {
	if err := args.require("index", argBody); err != nil {
		return nil, err
	}
	args = args.clone()
	index := args.take("index")
	id := args.take("id")

	method := http.MethodPost
	if !isEmpty(id) {
		method = http.MethodPut
	}

	req, err := c.newRequest("index", method, pathify(escape(index), "_doc", escape(id)), args)
	if err != nil {
		return nil, err
	}
	return c.Perform(ctx, req)
}

// Get returns a document. Required: "index", "id". Honours "ignore": 404.
func (c *Client) Get(ctx context.Context, args Args) (any, error) {
	if err := args.require("index", "id"); err != nil {
		return nil, err
	}
	args = args.clone()
	index := args.take("index")
	id := args.take("id")

	req, err := c.newRequest("get", http.MethodGet, pathify(escape(index), "_doc", escape(id)), args)
	if err != nil {
		return nil, err
	}
	req.Body = nil
	return c.performIgnoring(ctx, req, args)
}

// Delete removes a document. Required: "index", "id". Honours "ignore": 404.
func (c *Client) Delete(ctx context.Context, args Args) (any, error) {
	if err := args.require("index", "id"); err != nil {
		return nil, err
	}
	args = args.clone()
	index := args.take("index")
	id := args.take("id")

	req, err := c.newRequest("delete", http.MethodDelete, pathify(escape(index), "_doc", escape(id)), args)
	if err != nil {
		return nil, err
	}
	req.Body = nil
	return c.performIgnoring(ctx, req, args)
}

// Search runs a search across the named indices (or all indices). A "body"
// is typically a dsl.Search; without one the request is a GET.
func (c *Client) Search(ctx context.Context, args Args) (any, error) {
	return c.query(ctx, "search", "_search", args)
}

// Count returns the number of documents matching an optional query body.
func (c *Client) Count(ctx context.Context, args Args) (any, error) {
	return c.query(ctx, "count", "_count", args)
}

func (c *Client) query(ctx context.Context, action, op string, args Args) (any, error) {
	method := http.MethodGet
	if args[argBody] != nil {
		method = http.MethodPost
	}

	req, err := c.newRequest(action, method, pathify(listify(args["index"]), op), args)
	if err != nil {
		return nil, err
	}
	return c.Perform(ctx, req)
}
