package elastic

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const opaqueIDHeader = "X-Opaque-Id"

type opaqueIDKey struct{}

// OpaqueIDConfig configures the OpaqueID middleware.
type OpaqueIDConfig struct {
	Header    string        // default: "X-Opaque-Id"
	Generator func() string // default: random hex; nil result leaves the header unset
}

// WithOpaqueID returns a context whose requests carry the given opaque id.
// The engine echoes it in its slow logs and task listings.
func WithOpaqueID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, opaqueIDKey{}, id)
}

// OpaqueIDFrom returns the opaque id stored in ctx.
func OpaqueIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(opaqueIDKey{}).(string); ok {
		return id
	}
	return ""
}

// OpaqueID returns middleware that tags every request with an opaque id,
// taken from the context when present and generated otherwise.
func OpaqueID(cfg ...OpaqueIDConfig) TransportMiddleware {
	c := OpaqueIDConfig{
		Header:    opaqueIDHeader,
		Generator: defaultIDGenerator,
	}
	if len(cfg) > 0 {
		if cfg[0].Header != "" {
			c.Header = cfg[0].Header
		}
		if cfg[0].Generator != nil {
			c.Generator = cfg[0].Generator
		}
	}

	return func(next Transport) Transport {
		return TransportFunc(func(ctx context.Context, req *Request) (*Response, error) {
			id := OpaqueIDFrom(ctx)
			if id == "" {
				id = c.Generator()
			}
			if id != "" && req.Header.Get(c.Header) == "" {
				if req.Header == nil {
					req.Header = make(http.Header)
				}
				req.Header.Set(c.Header, id)
			}
			return next.Perform(ctx, req)
		})
	}
}

func defaultIDGenerator() string {
	b := make([]byte, 16)
	//nolint:errcheck,gosec // crypto/rand.Read always returns nil error
	rand.Read(b)
	return hex.EncodeToString(b)
}
