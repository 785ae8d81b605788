package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Vault bot metrics
var (
	// Inbound update counter by update type
	UpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vault",
			Subsystem: "bot",
			Name:      "updates_total",
			Help:      "Total number of inbound Telegram updates",
		},
		[]string{"type"},
	)

	// Store flow counter
	StoresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vault",
			Subsystem: "bot",
			Name:      "stores_total",
			Help:      "Total store attempts",
		},
		[]string{"media_kind", "status"},
	)

	// Retrieve flow counter
	RetrievalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vault",
			Subsystem: "bot",
			Name:      "retrievals_total",
			Help:      "Total retrieval attempts",
		},
		[]string{"status"},
	)

	// Token candidates rejected before or at insert
	TokenCollisionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vault",
			Subsystem: "bot",
			Name:      "token_collisions_total",
			Help:      "Token candidates discarded due to collision",
		},
	)

	// Archive relay duration
	RelayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vault",
			Subsystem: "bot",
			Name:      "relay_duration_seconds",
			Help:      "Relay-to-archive duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"status"},
	)

	// Archive delivery duration
	DeliveryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vault",
			Subsystem: "bot",
			Name:      "delivery_duration_seconds",
			Help:      "Delivery-from-archive duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"status"},
	)

	// Language selections
	LanguageSelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vault",
			Subsystem: "bot",
			Name:      "language_selections_total",
			Help:      "Completed language selections",
		},
		[]string{"language"},
	)
)

// RecordUpdate counts one inbound update.
func RecordUpdate(updateType string) {
	UpdatesTotal.WithLabelValues(updateType).Inc()
}

// RecordStore counts one store attempt.
func RecordStore(mediaKind, status string) {
	StoresTotal.WithLabelValues(mediaKind, status).Inc()
}

// RecordRetrieval counts one retrieval attempt.
func RecordRetrieval(status string) {
	RetrievalsTotal.WithLabelValues(status).Inc()
}

// RecordRelay records a relay-to-archive call.
func RecordRelay(status string, durationSec float64) {
	RelayDuration.WithLabelValues(status).Observe(durationSec)
}

// RecordDelivery records a delivery-from-archive call.
func RecordDelivery(status string, durationSec float64) {
	DeliveryDuration.WithLabelValues(status).Observe(durationSec)
}
