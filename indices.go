package elastic

import (
	"context"
	"net/http"
)

// IndicesService holds the index management actions. Obtain it from Client.Indices.
type IndicesService struct {
	c *Client
}

// Split splits an existing index into a new index with more primary shards.
//
// Required: "index" (source), "target". Optional "body" carries the target's
// settings and aliases.
func (s *IndicesService) Split(ctx context.Context, args Args) (any, error) {
	return s.resize(ctx, "indices.split", "_split", args)
}

// Shrink shrinks an existing index into a new index with fewer primary shards.
//
// Required: "index" (source), "target".
func (s *IndicesService) Shrink(ctx context.Context, args Args) (any, error) {
	return s.resize(ctx, "indices.shrink", "_shrink", args)
}

func (s *IndicesService) resize(ctx context.Context, action, op string, args Args) (any, error) {
	if err := args.require("index", "target"); err != nil {
		return nil, err
	}
	args = args.clone()
	source := args.take("index")
	target := args.take("target")

	req, err := s.c.newRequest(action, http.MethodPut, pathify(escape(source), op, escape(target)), args)
	if err != nil {
		return nil, err
	}
	return s.c.Perform(ctx, req)
}

// Status returns information about one or more indices. "index" may be a
// single name or a list; omit it for all indices. With "ignore" containing
// 404, a missing index yields NotFound instead of an error.
func (s *IndicesService) Status(ctx context.Context, args Args) (any, error) {
	req, err := s.c.newRequest("indices.status", http.MethodGet, pathify(listify(args["index"]), "_status"), args)
	if err != nil {
		return nil, err
	}
	req.Body = nil
	return s.c.performIgnoring(ctx, req, args)
}

// Create creates an index. Required: "index". Optional "body" carries
// settings, mappings and aliases.
func (s *IndicesService) Create(ctx context.Context, args Args) (any, error) {
	if err := args.require("index"); err != nil {
		return nil, err
	}
	args = args.clone()
	index := args.take("index")

	req, err := s.c.newRequest("indices.create", http.MethodPut, escape(index), args)
	if err != nil {
		return nil, err
	}
	return s.c.Perform(ctx, req)
}

// Delete deletes one or more indices. Required: "index". Honours "ignore": 404.
func (s *IndicesService) Delete(ctx context.Context, args Args) (any, error) {
	if err := args.require("index"); err != nil {
		return nil, err
	}
	args = args.clone()
	index := args.take("index")

	req, err := s.c.newRequest("indices.delete", http.MethodDelete, listify(index), args)
	if err != nil {
		return nil, err
	}
	req.Body = nil
	return s.c.performIgnoring(ctx, req, args)
}

// Exists reports whether all the named indices exist. Required: "index".
func (s *IndicesService) Exists(ctx context.Context, args Args) (bool, error) {
	if err := args.require("index"); err != nil {
		return false, err
	}
	args = args.clone()
	index := args.take("index")

	req, err := s.c.newRequest("indices.exists", http.MethodHead, listify(index), args)
	if err != nil {
		return false, err
	}
	req.Body = nil
	return s.c.performExists(ctx, req)
}

// Refresh makes recent operations on the named indices (or all indices)
// visible to search.
func (s *IndicesService) Refresh(ctx context.Context, args Args) (any, error) {
	req, err := s.c.newRequest("indices.refresh", http.MethodPost, pathify(listify(args["index"]), "_refresh"), args)
	if err != nil {
		return nil, err
	}
	req.Body = nil
	return s.c.Perform(ctx, req)
}
