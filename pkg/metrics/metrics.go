package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Feed metrics
	FeedFetchesTotal  *prometheus.CounterVec
	FeedFetchDuration prometheus.Histogram
	FeedFailuresTotal *prometheus.CounterVec
	FeedRecordsTotal  *prometheus.CounterVec

	// Report metrics
	ReportQueriesTotal *prometheus.CounterVec

	// Auth metrics
	AuthAttemptsTotal *prometheus.CounterVec
}

// New registers all collectors against the given registerer. Tests pass a
// fresh prometheus.NewRegistry so repeated construction never collides.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		FeedFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_fetches_total",
				Help: "Total number of analytics feed fetches",
			},
			[]string{"status"},
		),

		FeedFetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "feed_fetch_duration_seconds",
				Help:    "Analytics feed fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		FeedFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_failures_total",
				Help: "Total number of analytics feed failures",
			},
			[]string{"error_type"},
		),

		FeedRecordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_records_total",
				Help: "Total number of feed records seen by the normalizer",
			},
			[]string{"status"},
		),

		ReportQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_queries_total",
				Help: "Total number of report computations",
			},
			[]string{"view"},
		),

		AuthAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"result"},
		),
	}
}

// HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Feed fetch metrics
func (m *Metrics) RecordFeedFetch(status string, duration time.Duration) {
	m.FeedFetchesTotal.WithLabelValues(status).Inc()
	m.FeedFetchDuration.Observe(duration.Seconds())
}

// Feed failure metrics
func (m *Metrics) RecordFeedFailure(errorType string) {
	m.FeedFailuresTotal.WithLabelValues(errorType).Inc()
}

// Normalizer outcome metrics
func (m *Metrics) RecordFeedRecords(status string, count int) {
	m.FeedRecordsTotal.WithLabelValues(status).Add(float64(count))
}

// Report computation metrics
func (m *Metrics) RecordReportQuery(view string) {
	m.ReportQueriesTotal.WithLabelValues(view).Inc()
}

// Login attempt metrics
func (m *Metrics) RecordAuthAttempt(result string) {
	m.AuthAttemptsTotal.WithLabelValues(result).Inc()
}

// HTTP requests in flight counter
func (m *Metrics) IncHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Inc()
}

// HTTP requests in flight counter
func (m *Metrics) DecHTTPRequestsInFlight() {
	m.HTTPRequestsInFlight.Dec()
}
