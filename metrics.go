package elastic

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Instrument returns middleware that records request counts and latencies on
// reg. Collectors already registered on reg are reused, so building several
// clients against one registry is fine.
func Instrument(reg prometheus.Registerer) TransportMiddleware {
	requests := registerOrReuse(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "elastic",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Requests dispatched, by action, method and response code.",
	}, []string{"action", "method", "code"}))

	latency := registerOrReuse(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "elastic",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Round-trip latency of dispatched requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action", "method"}))

	return func(next Transport) Transport {
		return TransportFunc(func(ctx context.Context, req *Request) (*Response, error) {
			start := time.Now()
			resp, err := next.Perform(ctx, req)
			latency.WithLabelValues(req.Action, req.Method).Observe(time.Since(start).Seconds())

			code := "error"
			switch {
			case resp != nil:
				code = strconv.Itoa(resp.StatusCode)
			case ErrorStatus(err) != 0:
				code = strconv.Itoa(ErrorStatus(err))
			}
			requests.WithLabelValues(req.Action, req.Method, code).Inc()
			return resp, err
		})
	}
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic("elastic: register metrics: " + err.Error())
	}
	return c
}
