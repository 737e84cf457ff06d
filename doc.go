// Package elastic is a client for a search engine's REST API. Each endpoint
// is a method that takes a single named-argument bag; required arguments
// become path segments and everything else is filtered against a per-action
// allow-list before being sent as query parameters.
//
// Actions are grouped the way the REST API groups them:
//
//	c, err := elastic.New(elastic.WithURL("http://localhost:9200"))
//	body, err := c.Indices.Split(ctx, elastic.Args{
//	    "index":  "logs",
//	    "target": "logs-split",
//	    "body":   map[string]any{"settings": map[string]any{"index.number_of_shards": 4}},
//	})
//
// Arguments not in the action's allow-list are dropped silently. Missing
// required arguments fail with an *ArgumentError before any request is sent.
//
// Some actions accept an "ignore" argument. When it contains 404, a not-found
// response is returned as the NotFound result instead of an error:
//
//	body, err := c.Indices.Status(ctx, elastic.Args{"index": "foo", "ignore": 404})
//	if elastic.IsNotFound(body) { ... }
//
// Request bodies are usually built with the dsl subpackage. Every builder
// serialises itself to the nested map the engine expects:
//
//	q := dsl.NewHasParent().ParentType("article").QueryFunc(func(q *dsl.Query) {
//	    q.Match("title", "Ruby")
//	})
//	c.Search(ctx, elastic.Args{"index": "comments", "body": dsl.NewSearch().Query(q)})
//
// The network round trip is delegated to a Transport. The default is a plain
// HTTP transport; transports compose with TransportMiddleware the same way
// http.Handler middleware does.
package elastic
