package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "photomarket",
			Name:      "booking_created_total",
			Help:      "Count of booking requests created.",
		},
	)

	bookingStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "photomarket",
			Name:      "booking_status_changed_total",
			Help:      "Count of booking status changes by target status.",
		},
		[]string{"status"},
	)

	uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "photomarket",
			Name:      "uploads_total",
			Help:      "Count of image uploads by kind and result.",
		},
		[]string{"kind", "result"},
	)

	authFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "photomarket",
			Name:      "auth_failures_total",
			Help:      "Count of rejected authentication attempts by reason.",
		},
		[]string{"reason"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingStatus, uploads, authFailures)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingStatus(status string) {
	bookingStatus.WithLabelValues(status).Inc()
}

func IncUpload(kind string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	uploads.WithLabelValues(kind, result).Inc()
}

func IncAuthFailure(reason string) {
	authFailures.WithLabelValues(reason).Inc()
}
