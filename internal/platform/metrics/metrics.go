package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "pma"

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthAttemptsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of login attempts by method and outcome",
		},
		[]string{"method", "outcome"},
	)

	// Report metrics
	ReportsGeneratedCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_reports_generated_total",
			Help: "Total number of reports generated",
		},
		[]string{"report"},
	)

	ReportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_report_duration_seconds",
			Help:    "Duration of report generation in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"report"},
	)
)

// RecordAuthAttempt counts a login attempt. method is "password" or "google".
func RecordAuthAttempt(method, outcome string) {
	AuthAttemptsCounter.WithLabelValues(method, outcome).Inc()
}

// TrackReport returns a function that records a generated report and its duration.
func TrackReport(report string) func(startTime time.Time) {
	return func(startTime time.Time) {
		ReportsGeneratedCounter.WithLabelValues(report).Inc()
		ReportDuration.WithLabelValues(report).Observe(time.Since(startTime).Seconds())
	}
}
