package elastic_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/elastic"
	"github.com/bjaus/elastic/elastictest"
)

func TestLogger(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		reply      elastictest.Reply
		wantErr    bool
		wantSubstr []string
	}{
		"request is logged": {
			reply: elastictest.OK(nil),
			wantSubstr: []string{
				"level=INFO",
				"msg=request",
				"action=indices.split",
				"method=PUT",
				"path=foo/_split/bar",
				"status=200",
				"latency=",
			},
		},
		"failure is logged at warn": {
			reply:   elastictest.Status(http.StatusNotFound, map[string]any{"error": "gone"}),
			wantErr: true,
			wantSubstr: []string{
				"level=WARN",
				"status=404",
				`err="404 Not Found: gone"`,
			},
		},
		"transport error has zero status": {
			reply:   elastictest.Fail(errors.New("refused")),
			wantErr: true,
			wantSubstr: []string{
				"level=WARN",
				"status=0",
				"err=refused",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			rec := elastictest.NewRecorder(tc.reply)
			c := elastictest.NewClient(t, rec, elastic.WithMiddleware(elastic.Logger(logger)))

			_, err := c.Indices.Split(context.Background(), elastic.Args{"index": "foo", "target": "bar"})
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			logOutput := buf.String()
			for _, s := range tc.wantSubstr {
				assert.Contains(t, logOutput, s, "log output should contain %q", s)
			}
		})
	}
}

func TestLogger_includes_opaque_id(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rec := elastictest.NewRecorder()
	c := elastictest.NewClient(t, rec, elastic.WithMiddleware(
		elastic.OpaqueID(),
		elastic.Logger(logger),
	))

	ctx := elastic.WithOpaqueID(context.Background(), "job-42")
	_, err := c.Search(ctx, elastic.Args{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "opaque_id=job-42")
}

func TestClient_debug_dispatch_line(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	rec := elastictest.NewRecorder()
	c := elastictest.NewClient(t, rec, elastic.WithLogger(logger))

	_, err := c.Search(context.Background(), elastic.Args{"index": "books", "size": 3})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=dispatch")
	assert.Contains(t, out, "action=search")
	assert.Contains(t, out, `params="size=3"`)
}
