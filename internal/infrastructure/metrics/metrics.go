package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Debt metrics
	DebtsCreated prometheus.Counter
	DebtsDeleted prometheus.Counter
	DebtAmount   prometheus.Histogram
	DebtErrors   *prometheus.CounterVec

	// Payment metrics
	PaymentsApplied prometheus.Counter
	ChainsSettled   prometheus.Counter
	PartialSplits   prometheus.Counter
	PaymentDuration prometheus.Histogram
	PaymentErrors   *prometheus.CounterVec

	// Score metrics
	ScoresComputed prometheus.Counter
	ScoreCacheHits prometheus.Counter
	ScoreDuration  prometheus.Histogram

	// Rules metrics
	RulesUpdates prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Debt metrics
		DebtsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hub_debts_created_total",
			Help: "Total number of debts registered",
		}),
		DebtsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hub_debts_deleted_total",
			Help: "Total number of debts deleted",
		}),
		DebtAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hub_debt_amount",
			Help:    "Registered debt amounts",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 10000},
		}),
		DebtErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hub_debt_errors_total",
				Help: "Total number of debt errors by type",
			},
			[]string{"error_type"},
		),

		// Payment metrics
		PaymentsApplied: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hub_payments_applied_total",
			Help: "Total number of payments applied",
		}),
		ChainsSettled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hub_chains_settled_total",
			Help: "Total number of debt chains fully settled",
		}),
		PartialSplits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hub_partial_splits_total",
			Help: "Total number of partial payments that opened a remainder",
		}),
		PaymentDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hub_payment_duration_seconds",
			Help:    "Duration of payment operations",
			Buckets: prometheus.DefBuckets,
		}),
		PaymentErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hub_payment_errors_total",
				Help: "Total number of payment errors by type",
			},
			[]string{"error_type"},
		),

		// Score metrics
		ScoresComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hub_scores_computed_total",
			Help: "Total number of score computations",
		}),
		ScoreCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hub_score_cache_hits_total",
			Help: "Total number of score cache hits",
		}),
		ScoreDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hub_score_duration_seconds",
			Help:    "Duration of score computations",
			Buckets: prometheus.DefBuckets,
		}),

		// Rules metrics
		RulesUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hub_rules_updates_total",
			Help: "Total number of score rule updates",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hub_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hub_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}
