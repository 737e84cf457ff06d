package elastic

import (
	"context"
	"log/slog"
	"time"
)

// Logger returns middleware that logs each round trip using the provided
// slog.Logger. Failed requests are logged at warn level.
func Logger(logger *slog.Logger) TransportMiddleware {
	return func(next Transport) Transport {
		return TransportFunc(func(ctx context.Context, req *Request) (*Response, error) {
			start := time.Now()
			resp, err := next.Perform(ctx, req)

			status := ErrorStatus(err)
			if resp != nil {
				status = resp.StatusCode
			}

			attrs := []slog.Attr{
				slog.String("action", req.Action),
				slog.String("method", req.Method),
				slog.String("path", req.Path),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
			}
			if id := req.Header.Get(opaqueIDHeader); id != "" {
				attrs = append(attrs, slog.String("opaque_id", id))
			}

			level := slog.LevelInfo
			if err != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("err", err.Error()))
			}

			logger.LogAttrs(ctx, level, "request", attrs...)
			return resp, err
		})
	}
}
