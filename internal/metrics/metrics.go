package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayline",
			Name:      "booking_outcomes_total",
			Help:      "Booking attempts by outcome.",
		},
		[]string{"outcome"},
	)

	admissionWait = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "stayline",
			Name:      "admission_wait_seconds",
			Help:      "Time spent waiting for a room type's admission gate.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		},
	)

	cancellations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stayline",
			Name:      "cancellations_total",
			Help:      "Reservations cancelled.",
		},
	)
)

// Booking outcome labels.
const (
	OutcomeConfirmed = "confirmed"
	OutcomeConflict  = "conflict"
	OutcomeBusy      = "busy"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingOutcomes, admissionWait, cancellations)
	})
}

func IncBooking(outcome string) {
	bookingOutcomes.WithLabelValues(outcome).Inc()
}

func ObserveAdmissionWait(d time.Duration) {
	admissionWait.Observe(d.Seconds())
}

func IncCancellation() {
	cancellations.Inc()
}
