// internals/metrics/metrics.go
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shiftlink_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shiftlink_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ApplicationsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shiftlink_applications_submitted_total",
			Help: "Total number of job applications created",
		},
	)

	ApplicationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shiftlink_application_transitions_total",
			Help: "Application status and completion changes",
		},
		[]string{"to"},
	)

	ReviewsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shiftlink_reviews_submitted_total",
			Help: "Review halves written, by author type",
		},
		[]string{"type"},
	)

	EmployerFlags = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shiftlink_employer_flags_total",
			Help: "Employer flag and unflag actions",
		},
		[]string{"action"},
	)

	VerificationDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shiftlink_verification_decisions_total",
			Help: "Employer verification decisions by outcome",
		},
		[]string{"status"},
	)
)

func ObserveRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
