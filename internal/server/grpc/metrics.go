package grpcserver

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	rpcTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "officehub_grpc_requests_total",
			Help: "gRPC calls by method and status code",
		},
		[]string{"method", "code"},
	)

	rpcDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "officehub_grpc_request_duration_seconds",
			Help:    "gRPC call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func observe(method string, err error, start time.Time) {
	rpcTotal.WithLabelValues(method, status.Code(err).String()).Inc()
	rpcDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// MetricsUnary counts calls and records their duration.
func MetricsUnary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		observe(info.FullMethod, err, start)
		return resp, err
	}
}

// MetricsStream does the same for streams; duration covers the whole stream.
func MetricsStream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, next grpc.StreamHandler) error {
		start := time.Now()
		err := next(srv, ss)
		observe(info.FullMethod, err, start)
		return err
	}
}
