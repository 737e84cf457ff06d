package elastic

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// CompressConfig configures the Compress middleware.
type CompressConfig struct {
	Level   int // gzip level (1-9, default: 5)
	MinSize int // minimum encoded body size to compress (default: 1024)
}

// Compress returns middleware that gzip-compresses request bodies. The body
// is encoded up front and replaced with the compressed bytes; bodies smaller
// than MinSize are sent encoded but uncompressed.
func Compress(cfg ...CompressConfig) TransportMiddleware {
	c := CompressConfig{
		Level:   5,
		MinSize: 1024,
	}
	if len(cfg) > 0 {
		if cfg[0].Level > 0 {
			c.Level = cfg[0].Level
		}
		if cfg[0].MinSize > 0 {
			c.MinSize = cfg[0].MinSize
		}
	}

	pool := &sync.Pool{
		New: func() any {
			gz, _ := gzip.NewWriterLevel(io.Discard, c.Level) //nolint:errcheck // level is pre-validated
			return gz
		},
	}

	return func(next Transport) Transport {
		return TransportFunc(func(ctx context.Context, req *Request) (*Response, error) {
			if req.Body == nil || req.Header.Get("Content-Encoding") != "" {
				return next.Perform(ctx, req)
			}

			r, err := encodeBody(req.Body)
			if err != nil {
				return nil, fmt.Errorf("encode body: %w", err)
			}
			raw, err := io.ReadAll(r)
			if err != nil {
				return nil, fmt.Errorf("encode body: %w", err)
			}
			if len(raw) < c.MinSize {
				req.Body = raw
				return next.Perform(ctx, req)
			}

			var buf bytes.Buffer
			gz := pool.Get().(*gzip.Writer) //nolint:errcheck,forcetypeassert // pool.New always returns *gzip.Writer
			gz.Reset(&buf)
			_, err = gz.Write(raw)
			if cerr := gz.Close(); err == nil {
				err = cerr
			}
			pool.Put(gz)
			if err != nil {
				return nil, fmt.Errorf("compress body: %w", err)
			}

			if req.Header == nil {
				req.Header = make(http.Header)
			}
			req.Header.Set("Content-Encoding", "gzip")
			req.Body = buf.Bytes()
			return next.Perform(ctx, req)
		})
	}
}
