package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status.",
		},
		[]string{"endpoint", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "bookings_created_total",
			Help:      "Bookings successfully created.",
		},
	)

	slotConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "booking_slot_conflicts_total",
			Help:      "Booking attempts rejected because the slot was taken.",
		},
	)

	paymentsVerified = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "payments_verified_total",
			Help:      "Payment verification attempts by outcome.",
		},
		[]string{"outcome"},
	)

	receiptsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "salon",
			Name:      "receipt_emails_total",
			Help:      "Receipt email dispatch attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, slotConflicts, paymentsVerified, receiptsSent)
	})
}

func IncHTTP(endpoint, status string) {
	httpRequests.WithLabelValues(endpoint, status).Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncSlotConflict() {
	slotConflicts.Inc()
}

func IncPaymentVerified(outcome string) {
	paymentsVerified.WithLabelValues(outcome).Inc()
}

func IncReceipt(outcome string) {
	receiptsSent.WithLabelValues(outcome).Inc()
}
