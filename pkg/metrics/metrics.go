package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors for the service.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	externalCallsTotal  *prometheus.CounterVec
	externalCallSeconds *prometheus.HistogramVec
	quotesTotal         prometheus.Counter
	slotsGenerated      prometheus.Histogram
}

// New registers and returns the service collectors.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		externalCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "external_calls_total",
			Help:        "Calls to external collaborators (calendar freebusy, event insert).",
			ConstLabels: constLabels,
		}, []string{"target", "operation", "outcome"}),
		externalCallSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "external_call_duration_seconds",
			Help:        "External call latency.",
			ConstLabels: constLabels,
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"target", "operation"}),
		quotesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "quotes_calculated_total",
			Help:        "Total number of quotes calculated.",
			ConstLabels: constLabels,
		}),
		slotsGenerated: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:        "availability_slots_generated",
			Help:        "Slots returned per availability query.",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 15, 20, 30},
		}),
	}
}

// ObserveHTTPRequest records one handled HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveExternalCall records one call to an external collaborator.
func (m *Metrics) ObserveExternalCall(target, operation, outcome string, duration time.Duration) {
	m.externalCallsTotal.WithLabelValues(target, operation, outcome).Inc()
	m.externalCallSeconds.WithLabelValues(target, operation).Observe(duration.Seconds())
}

// IncQuotes counts one calculated quote.
func (m *Metrics) IncQuotes() {
	m.quotesTotal.Inc()
}

// ObserveSlotsGenerated records the slot count of one availability query.
func (m *Metrics) ObserveSlotsGenerated(count int) {
	m.slotsGenerated.Observe(float64(count))
}
