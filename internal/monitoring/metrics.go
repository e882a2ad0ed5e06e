package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Successfully created orders",
		},
	)

	orderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_failures_total",
			Help: "Rejected or failed order attempts",
		},
		[]string{"reason"},
	)

	ticketsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_issued_total",
			Help: "Individual tickets minted by successful orders",
		},
	)

	ticketsScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_scanned_total",
			Help: "Tickets scanned at check-in",
		},
	)
)

// TrackRequest records one completed HTTP request.
func TrackRequest(method, route string, status string, duration time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func TrackOrderCreated(tickets int) {
	ordersCreated.Inc()
	ticketsIssued.Add(float64(tickets))
}

func TrackOrderFailure(reason string) {
	orderFailures.WithLabelValues(reason).Inc()
}

func TrackTicketScanned() {
	ticketsScanned.Inc()
}
