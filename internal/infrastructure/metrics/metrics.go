package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the discovery service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Media-status ingestion metrics
	StreamStatusEvents prometheus.Counter
	StreamStatusErrors prometheus.Counter
}

// NewMetrics creates a Metrics instance registered on the given registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "discovery_service_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "discovery_service_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
		StreamStatusEvents: factory.NewCounter(prometheus.CounterOpts{
			Name: "discovery_service_stream_status_events_total",
			Help: "Total number of stream status events processed",
		}),
		StreamStatusErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "discovery_service_stream_status_errors_total",
			Help: "Total number of stream status events that failed",
		}),
	}
}

// RecordHTTPRequest records a handled HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// RecordStreamStatusEvent records a processed stream status event
func (m *Metrics) RecordStreamStatusEvent() {
	m.StreamStatusEvents.Inc()
}

// RecordStreamStatusError records a failed stream status event
func (m *Metrics) RecordStreamStatusError() {
	m.StreamStatusErrors.Inc()
}
