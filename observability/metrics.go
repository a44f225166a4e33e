package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GRPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_grpc_requests_total",
			Help: "Total number of gRPC calls handled by the email service",
		},
		[]string{"method", "code"},
	)

	GRPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "emails_grpc_request_duration_seconds",
			Help:    "Duration of gRPC calls handled by the email service in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_http_requests_total",
			Help: "Total number of requests on the observability endpoint",
		},
		[]string{"method", "path", "status"},
	)
)
