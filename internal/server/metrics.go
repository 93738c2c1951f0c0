package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "diocalc",
		Name:      "active_requests",
		Help:      "Number of HTTP requests currently being served.",
	})
	totalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "diocalc",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests served, by path.",
	}, []string{"path"})
)

// Metrics exposes the process Prometheus registry over HTTP and tracks
// request-level gauges for the metrics server itself.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates a Metrics backed by the default Prometheus registry,
// which already carries the solver counters and the Go runtime collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		handler: promhttp.Handler(),
	}
}

// IncrementActiveRequests records the start of an in-flight request.
func (m *Metrics) IncrementActiveRequests() {
	activeRequests.Inc()
}

// DecrementActiveRequests records the end of an in-flight request.
func (m *Metrics) DecrementActiveRequests() {
	activeRequests.Dec()
}

// CountRequest increments the per-path request counter.
func (m *Metrics) CountRequest(path string) {
	totalRequests.WithLabelValues(path).Inc()
}

// WritePrometheus serves the registry in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
