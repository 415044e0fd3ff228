package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookease",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bookease",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	slotClaims = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookease",
			Name:      "slot_claims_total",
			Help:      "Count of slot claim attempts by outcome.",
		},
		[]string{"outcome"},
	)

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookease",
			Name:      "booking_transitions_total",
			Help:      "Count of booking status transitions by target status.",
		},
		[]string{"status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, slotClaims, bookingTransitions)
	})
}

// IncSlotClaim records a claim attempt outcome ("claimed", "slot_taken", "rejected", "error").
func IncSlotClaim(outcome string) {
	slotClaims.WithLabelValues(outcome).Inc()
}

// IncBookingTransition records a successful status transition.
func IncBookingTransition(status string) {
	bookingTransitions.WithLabelValues(status).Inc()
}

// HTTPMiddleware instruments every request with a counter and a latency histogram.
func HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
