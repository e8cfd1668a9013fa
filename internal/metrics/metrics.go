package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// OpenIssues is the number of issues currently in the open status,
	// refreshed periodically from the database.
	OpenIssues = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "open_issues",
			Help: "Number of issues currently open",
		},
	)

	// OpenBountyTotal is the sum of bounty values across open issues.
	OpenBountyTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "open_bounty_total",
			Help: "Total bounty value across open issues",
		},
	)
)

// Resource ids are UUIDs, so cardinality control replaces hex segments
// rather than plain integers.
var (
	uuidPathSegment = regexp.MustCompile(`/[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}(/|$)`)
	initOnce        sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, OpenIssues, OpenBountyTotal)
	})
}

// NormalizePath reduces cardinality by replacing UUID path segments with {id}.
// E.g. /projects/5f1c.../issues -> /projects/{id}/issues.
func NormalizePath(path string) string {
	return uuidPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// SetOpenIssueStats updates both open-issue gauges in one call so the
// scheduler never publishes a half-refreshed pair.
func SetOpenIssueStats(count int, bountyTotal float64) {
	OpenIssues.Set(float64(count))
	OpenBountyTotal.Set(bountyTotal)
}
