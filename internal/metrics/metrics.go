package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	PaymentStatusProcessed     = "processed"
	PaymentStatusRejected      = "rejected"
	PaymentStatusPersistFailed = "persist_failed"
)

var (
	PaymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Total payments attempted, by outcome",
		},
		[]string{"status"},
	)

	PaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_amounts",
			Help:    "Distribution of persisted payment amounts",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		},
		[]string{"method"},
	)

	ProcessorRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "processor_request_duration_seconds",
			Help:    "Latency of calls to the external payment processor",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	CustomersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "customers_total",
			Help: "Customer lifecycle events",
		},
		[]string{"event"},
	)
)

// RegisterMetrics registers every collector with registerer. It panics when
// called twice on the same registerer.
func RegisterMetrics(registerer prometheus.Registerer) {
	registerer.MustRegister(
		PaymentsTotal,
		PaymentAmounts,
		ProcessorRequestDuration,
		CustomersTotal,
	)
}
