// Package dsl builds search request bodies. Every builder is configured with
// chained methods and serialises itself with Map to the nested structure the
// engine's query DSL expects: a single key naming the clause, mapped to the
// options that were set. Unset options are omitted.
//
//	q := dsl.NewHasParent().
//	    ParentType("article").
//	    ScoreMode("max").
//	    QueryFunc(func(q *dsl.Query) { q.Match("title", "Ruby") })
//
//	q.Map()
//	// {"has_parent": {"parent_type": "article", "score_mode": "max",
//	//                 "query": {"match": {"title": "Ruby"}}}}
//
// Builders implement json.Marshaler through Map, so they can be passed
// directly as a request body. Builders are not safe for concurrent mutation.
package dsl
