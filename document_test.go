package elastic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/elastic"
	"github.com/bjaus/elastic/dsl"
	"github.com/bjaus/elastic/elastictest"
)

func TestClient_Index(t *testing.T) {
	t.Parallel()

	doc := map[string]any{"title": "Ruby"}

	tests := map[string]struct {
		args       elastic.Args
		wantMethod string
		wantPath   string
		wantParams url.Values
	}{
		"with id": {
			args:       elastic.Args{"index": "books", "id": "1", "body": doc, "refresh": true},
			wantMethod: http.MethodPut,
			wantPath:   "books/_doc/1",
			wantParams: url.Values{"refresh": {"true"}},
		},
		"without id": {
			args:       elastic.Args{"index": "books", "body": doc},
			wantMethod: http.MethodPost,
			wantPath:   "books/_doc",
			wantParams: url.Values{},
		},
		"numeric id": {
			args:       elastic.Args{"index": "books", "id": 42, "body": doc},
			wantMethod: http.MethodPut,
			wantPath:   "books/_doc/42",
			wantParams: url.Values{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := elastictest.NewRecorder(elastictest.OK(map[string]any{"result": "created"}))
			c := elastictest.NewClient(t, rec)

			res, err := c.Index(context.Background(), tc.args)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"result": "created"}, res)

			req := rec.Last()
			assert.Equal(t, "index", req.Action)
			assert.Equal(t, tc.wantMethod, req.Method)
			assert.Equal(t, tc.wantPath, req.Path)
			assert.Equal(t, tc.wantParams, req.Params)
			assert.Equal(t, doc, req.Body)
		})
	}
}

func TestClient_Index_requires_body(t *testing.T) {
	t.Parallel()

	rec := elastictest.NewRecorder()
	c := elastictest.NewClient(t, rec)

	_, err := c.Index(context.Background(), elastic.Args{"index": "books", "id": "1"})
	require.ErrorIs(t, err, elastic.ErrMissingArgument)
	assert.EqualError(t, err, "required argument 'body' missing")
	assert.Zero(t, rec.Calls())
}

func TestClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		rec := elastictest.NewRecorder(elastictest.OK(map[string]any{"found": true}))
		c := elastictest.NewClient(t, rec)

		res, err := c.Get(context.Background(), elastic.Args{"index": "books", "id": "a b", "realtime": false})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"found": true}, res)

		req := rec.Last()
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "books/_doc/a%20b", req.Path)
		assert.Equal(t, url.Values{"realtime": {"false"}}, req.Params)
	})

	t.Run("missing ignored", func(t *testing.T) {
		t.Parallel()

		rec := elastictest.NewRecorder(elastictest.Status(http.StatusNotFound, map[string]any{"found": false}))
		c := elastictest.NewClient(t, rec)

		res, err := c.Get(context.Background(), elastic.Args{"index": "books", "id": "1", "ignore": 404})
		require.NoError(t, err)
		assert.True(t, elastic.IsNotFound(res))
	})

	t.Run("missing reported", func(t *testing.T) {
		t.Parallel()

		rec := elastictest.NewRecorder(elastictest.Status(http.StatusNotFound, map[string]any{"found": false}))
		c := elastictest.NewClient(t, rec)

		_, err := c.Get(context.Background(), elastic.Args{"index": "books", "id": "1"})
		require.ErrorIs(t, err, elastic.ErrNotFound)
		assert.EqualError(t, err, "get: 404 Not Found")
	})

	t.Run("requires id", func(t *testing.T) {
		t.Parallel()

		rec := elastictest.NewRecorder()
		c := elastictest.NewClient(t, rec)

		_, err := c.Get(context.Background(), elastic.Args{"index": "books"})
		require.ErrorIs(t, err, elastic.ErrMissingArgument)
		assert.Zero(t, rec.Calls())
	})
}

func TestClient_Delete(t *testing.T) {
	t.Parallel()

	rec := elastictest.NewRecorder(elastictest.Status(http.StatusNotFound, nil))
	c := elastictest.NewClient(t, rec)

	res, err := c.Delete(context.Background(), elastic.Args{"index": "books", "id": "1", "ignore": []int{404}, "routing": "u1"})
	require.NoError(t, err)
	assert.True(t, elastic.IsNotFound(res))

	req := rec.Last()
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "books/_doc/1", req.Path)
	assert.Equal(t, url.Values{"routing": {"u1"}}, req.Params)
	assert.Nil(t, req.Body)
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args       elastic.Args
		wantMethod string
		wantPath   string
		wantParams url.Values
	}{
		"all indices without body": {
			args:       elastic.Args{"q": "title:ruby"},
			wantMethod: http.MethodGet,
			wantPath:   "_search",
			wantParams: url.Values{"q": {"title:ruby"}},
		},
		"list with body": {
			args: elastic.Args{
				"index": []string{"a", "b"},
				"body":  dsl.NewSearch().QueryFunc(func(q *dsl.Query) { q.Match("title", "Ruby") }),
				"size":  5,
			},
			wantMethod: http.MethodPost,
			wantPath:   "a,b/_search",
			wantParams: url.Values{"size": {"5"}},
		},
		"wildcard index": {
			args:       elastic.Args{"index": "logs-*"},
			wantMethod: http.MethodGet,
			wantPath:   "logs-*/_search",
			wantParams: url.Values{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rec := elastictest.NewRecorder()
			c := elastictest.NewClient(t, rec)

			_, err := c.Search(context.Background(), tc.args)
			require.NoError(t, err)

			req := rec.Last()
			assert.Equal(t, tc.wantMethod, req.Method)
			assert.Equal(t, tc.wantPath, req.Path)
			assert.Equal(t, tc.wantParams, req.Params)
		})
	}
}

func TestClient_Search_body_serialises(t *testing.T) {
	t.Parallel()

	rec := elastictest.NewRecorder()
	c := elastictest.NewClient(t, rec)

	search := dsl.NewSearch().
		QueryFunc(func(q *dsl.Query) { q.Term("status", "published") }).
		Size(1)
	_, err := c.Search(context.Background(), elastic.Args{"index": "books", "body": search})
	require.NoError(t, err)

	b, err := json.Marshal(rec.Last().Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":{"term":{"status":"published"}},"size":1}`, string(b))
}

func TestClient_Count(t *testing.T) {
	t.Parallel()

	rec := elastictest.NewRecorder(elastictest.OK(map[string]any{"count": float64(3)}))
	c := elastictest.NewClient(t, rec)

	res, err := c.Count(context.Background(), elastic.Args{"index": "books", "min_score": 0.5})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"count": float64(3)}, res)

	req := rec.Last()
	assert.Equal(t, "count", req.Action)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "books/_count", req.Path)
	assert.Equal(t, url.Values{"min_score": {"0.5"}}, req.Params)
}
