package elastic

import (
	"context"
	"time"
)

// Timeout returns middleware that bounds each round trip to d. The caller's
// own deadline still applies when it is earlier.
func Timeout(d time.Duration) TransportMiddleware {
	return func(next Transport) Transport {
		return TransportFunc(func(ctx context.Context, req *Request) (*Response, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next.Perform(ctx, req)
		})
	}
}
