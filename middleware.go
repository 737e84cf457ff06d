package elastic

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// TransportMiddleware wraps a Transport with additional behaviour.
type TransportMiddleware func(next Transport) Transport

// Chain applies middleware to a transport. The first middleware is the
// outermost, so it sees the request first.
func Chain(t Transport, mw ...TransportMiddleware) Transport {
	for i := len(mw) - 1; i >= 0; i-- {
		t = mw[i](t)
	}
	return t
}

// Recovery returns middleware that turns a panicking transport into an error.
func Recovery() TransportMiddleware {
	return func(next Transport) Transport {
		return TransportFunc(func(ctx context.Context, req *Request) (resp *Response, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.ErrorContext(ctx, "transport panic recovered",
						"panic", rec,
						"stack", string(debug.Stack()),
						"action", req.Action,
						"method", req.Method,
						"path", req.Path,
					)
					resp, err = nil, fmt.Errorf("transport panic: %v", rec)
				}
			}()
			return next.Perform(ctx, req)
		})
	}
}
