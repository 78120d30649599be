/*
metrics.go - Prometheus instrumentation

PURPOSE:
  Exposes operational metrics for the service: HTTP request counts and
  latencies, plus domain counters for aggregation requests. Uses a private
  registry so only this service's collectors (and the standard process/Go
  collectors) are exported.

METRICS:
  revenue_engine_http_requests_total{method,path,status}
  revenue_engine_http_request_duration_seconds{method,path}
  revenue_engine_http_inflight_requests
  revenue_engine_aggregations_total{criterion,outcome}
  revenue_engine_orders_per_request

SEE ALSO:
  - server.go: Mounts the /metrics handler and Instrument middleware
  - handlers.go: Calls recordAggregation
*/
package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
)

var (
	// Registry holds the service-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "revenue_engine",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "revenue_engine",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "revenue_engine",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 10), // 0.5ms to ~0.5s
		},
		[]string{"method", "path"},
	)

	aggregations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "revenue_engine",
			Name:      "aggregations_total",
			Help:      "Total number of aggregation requests by criterion and outcome.",
		},
		[]string{"criterion", "outcome"},
	)

	ordersPerRequest = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "revenue_engine",
			Name:      "orders_per_request",
			Help:      "Number of orders submitted per aggregation request.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 to ~16k
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		aggregations,
		ordersPerRequest,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// MetricsHandler returns an HTTP handler exposing the registered collectors.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Instrument wraps a handler with HTTP metrics collection.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		method := strings.ToUpper(r.Method)
		path := canonicalPath(r.URL.Path)
		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

// canonicalPath collapses unknown paths into one label value so that probes
// and typos cannot blow up metric cardinality.
func canonicalPath(p string) string {
	switch p {
	case "/fonoma/backend/solution",
		"/fonoma/backend/summary",
		"/fonoma/backend/example",
		"/fonoma/backend/examples",
		"/healthz":
		return p
	}
	return "other"
}

// recordAggregation records a solution-endpoint outcome. An empty criterion
// (undecodable or incomplete request) is bucketed as "none" to keep label
// cardinality bounded.
func recordAggregation(criterion string, orderCount int, outcome string) {
	c := criterion
	switch c {
	case "completed", "pending", "canceled", "all":
	default:
		c = "none"
	}
	aggregations.WithLabelValues(c, outcome).Inc()
	ordersPerRequest.Observe(float64(orderCount))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
