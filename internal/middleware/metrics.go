package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tabsplit/internal/metrics"
)

// MetricsInterceptor records RPC latency and error codes per procedure.
func MetricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			m.RPCDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			if err != nil {
				m.RPCErrors.WithLabelValues(procedure, connect.CodeOf(err).String()).Inc()
			}
			return resp, err
		}
	}
}
