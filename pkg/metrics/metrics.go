package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	ViewEvaluationsTotal   *prometheus.CounterVec
	ViewEvaluationDuration *prometheus.HistogramVec
	ViewResultSize         *prometheus.HistogramVec

	InvalidDatesTotal *prometheus.CounterVec

	SettingsChangesTotal *prometheus.CounterVec
}

// NewCollector registers the collector's metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() so collectors never clash.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		ViewEvaluationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "view",
			Name:      "evaluations_total",
			Help:      "Total number of derived view evaluations by screen.",
		}, []string{"screen"}),

		ViewEvaluationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "view",
			Name:      "evaluation_duration_seconds",
			Help:      "Latency of derived view evaluation.",
			Buckets:   []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"screen"}),

		ViewResultSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "view",
			Name:      "result_records",
			Help:      "Number of records returned per view evaluation.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"screen"}),

		InvalidDatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "invalid_dates_total",
			Help:      "Records excluded from date-based views because a date could not be parsed.",
		}, []string{"entity"}),

		SettingsChangesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "settings",
			Name:      "changes_total",
			Help:      "Effective settings changes by field.",
		}, []string{"field"}),
	}
}
