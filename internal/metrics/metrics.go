// Package metrics holds the Prometheus collectors of the barter engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SwipesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "barter",
		Name:      "swipes_total",
		Help:      "Recorded swipes by action.",
	}, []string{"action"})

	MatchesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "barter",
		Name:      "matches_created_total",
		Help:      "Matches created from mutual likes.",
	})

	DealsProposedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "barter",
		Name:      "deals_proposed_total",
		Help:      "Deals proposed inside matches.",
	})

	DealTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "barter",
		Name:      "deal_transitions_total",
		Help:      "Deal status transitions by target status and outcome.",
	}, []string{"to", "outcome"})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "barter",
		Name:      "notifications_total",
		Help:      "Notifications handed to the emitter by kind and outcome.",
	}, []string{"kind", "outcome"})

	DiscoverResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "barter",
		Name:      "discover_results",
		Help:      "Number of listings returned per discover call.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})

	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "barter",
		Name:      "rpc_duration_seconds",
		Help:      "gRPC handler latency by method and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "code"})
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
