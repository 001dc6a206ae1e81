package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	estimator = "estimator"

	actionsTotal   = "actions_total"
	resultsTotal   = "results_total"
	resultRoubles  = "result_roubles"
	sessionsTotal  = "sessions_started_total"
	sessionsActive = "sessions_active"
	quotesTotal    = "quote_requests_total"

	// Labels
	actionLabel = "action"
	statusLabel = "status"
	stateLabel  = "state"
)

const (
	ActionStatusOK       = "ok"
	ActionStatusRejected = "rejected"

	QuoteSent     = "sent"
	QuoteFailed   = "failed"
	QuoteDisabled = "disabled"
)

/**
* Metrics definition
**/
var actionsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: estimator,
		Name:      actionsTotal,
		Help:      "number of wizard actions partitioned by action and outcome",
	},
	[]string{actionLabel, statusLabel},
)

var resultsTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: estimator,
		Name:      resultsTotal,
		Help:      "number of times a visitor reached the results step",
	},
)

var resultRoublesMetric = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Subsystem: estimator,
		Name:      resultRoubles,
		Help:      "estimated totals shown on the results step",
		Buckets:   []float64{75000, 100000, 150000, 200000, 250000, 300000, 350000},
	},
)

var sessionsTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: estimator,
		Name:      sessionsTotal,
		Help:      "number of estimator sessions created",
	},
)

var quotesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: estimator,
		Name:      quotesTotal,
		Help:      "number of exact quote requests relayed to telegram",
	},
	[]string{stateLabel},
)

func IncreaseActionsTotal(action, status string) {
	actionsTotalMetric.With(prometheus.Labels{actionLabel: action, statusLabel: status}).Inc()
}

func ObserveResult(total int64) {
	resultsTotalMetric.Inc()
	resultRoublesMetric.Observe(float64(total))
}

func IncreaseSessionsTotal() {
	sessionsTotalMetric.Inc()
}

func IncreaseQuotesTotal(state string) {
	quotesTotalMetric.With(prometheus.Labels{stateLabel: state}).Inc()
}

// NewSessionsGauge reports the number of live sessions through count.
func NewSessionsGauge(count func() int) prometheus.Collector {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Subsystem: estimator,
			Name:      sessionsActive,
			Help:      "number of estimator sessions held in memory",
		},
		func() float64 { return float64(count()) },
	)
}

// Collectors returns the estimator collectors for a registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		actionsTotalMetric,
		resultsTotalMetric,
		resultRoublesMetric,
		sessionsTotalMetric,
		quotesTotalMetric,
	}
}
