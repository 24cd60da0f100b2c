package compatibility

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// validatorMetrics instruments validation calls. Metrics are registered on
// an injected registerer so tests can isolate registries.
type validatorMetrics struct {
	validations  prometheus.Counter
	conflicts    *prometheus.CounterVec
	removals     prometheus.Counter
	duration     prometheus.Histogram
	overallScore prometheus.Histogram
}

func newValidatorMetrics(registry prometheus.Registerer) *validatorMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)

	return &validatorMetrics{
		validations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "techstack",
			Subsystem: "validator",
			Name:      "validations_total",
			Help:      "Total number of tech stack validations performed.",
		}),
		conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "techstack",
			Subsystem: "validator",
			Name:      "conflicts_detected_total",
			Help:      "Conflicts detected, partitioned by severity and type.",
		}, []string{"severity", "conflict_type"}),
		removals: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "techstack",
			Subsystem: "validator",
			Name:      "technologies_removed_total",
			Help:      "Technologies removed during conflict resolution.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "techstack",
			Subsystem: "validator",
			Name:      "validation_duration_seconds",
			Help:      "Wall time of a full validation call.",
			Buckets:   prometheus.DefBuckets,
		}),
		overallScore: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "techstack",
			Subsystem: "validator",
			Name:      "overall_score",
			Help:      "Distribution of overall compatibility scores.",
			Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
		}),
	}
}

func (m *validatorMetrics) observe(report *ValidationReport, seconds float64) {
	m.validations.Inc()
	for _, c := range report.Conflicts {
		m.conflicts.WithLabelValues(string(c.Severity), string(c.Type)).Inc()
	}
	m.removals.Add(float64(len(report.RemovedStack)))
	m.duration.Observe(seconds)
	m.overallScore.Observe(report.OverallScore)
}
