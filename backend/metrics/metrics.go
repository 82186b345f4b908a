package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// ReportsSubmittedTotal counts submissions by result (ok, store_error).
	ReportsSubmittedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "civicflow",
		Subsystem: "intake",
		Name:      "reports_submitted_total",
		Help:      "Total number of report submissions, labeled by result.",
	}, []string{"result"})

	// PriorityScore is the distribution of computed priority scores.
	PriorityScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "civicflow",
		Subsystem: "intake",
		Name:      "priority_score",
		Help:      "Priority scores assigned at intake.",
		Buckets:   []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	})

	// CriticalReportsTotal counts submissions that scored above the critical threshold.
	CriticalReportsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "civicflow",
		Subsystem: "intake",
		Name:      "critical_reports_total",
		Help:      "Total number of submitted reports scoring above 80.",
	})

	// LayerTriggeredTotal counts non-zero adjustments per scoring layer.
	LayerTriggeredTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "civicflow",
		Subsystem: "scoring",
		Name:      "layer_triggered_total",
		Help:      "Number of reports where a scoring layer changed the score.",
	}, []string{"layer"})

	ServiceLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "civicflow",
		Subsystem: "directory",
		Name:      "lookups_total",
		Help:      "Service directory lookups, labeled by whether anything matched.",
	}, []string{"result"})

	PublishErrorTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "civicflow",
		Subsystem: "feed",
		Name:      "rabbitmq_publish_error_total",
		Help:      "Total number of report feed publish errors.",
	})
)

// Register registers civicflow metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			ReportsSubmittedTotal,
			PriorityScore,
			CriticalReportsTotal,
			LayerTriggeredTotal,
			ServiceLookupsTotal,
			PublishErrorTotal,
		)
	})
}
