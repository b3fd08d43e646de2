package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	BookingsSubmitted *prometheus.CounterVec
	CheckoutOutcomes  *prometheus.CounterVec
	OwnerDecisions    *prometheus.CounterVec
	EmailsSent        *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	ErrorsCount       *prometheus.CounterVec
}

// NewMetrics creates metrics registered on the default registry
func NewMetrics(namespace string) *Metrics {
	return NewMetricsWithRegistry(namespace, prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates metrics registered on reg. Tests pass a
// fresh prometheus.NewRegistry() so repeated construction does not panic.
func NewMetricsWithRegistry(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BookingsSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_submitted_total",
			Help:      "The total number of tour booking submissions by payment method",
		}, []string{"method"}),
		CheckoutOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_outcomes_total",
			Help:      "Card checkout results: redirect, checkout_failed, payment_pending",
		}, []string{"outcome"}),
		OwnerDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "owner_decisions_total",
			Help:      "Vehicle owner verification decisions",
		}, []string{"action"}),
		EmailsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "Outgoing notification emails by delivery status",
		}, []string{"status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
