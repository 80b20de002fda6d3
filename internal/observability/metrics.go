package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	activitiesTracked = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extrack",
		Subsystem: "activity",
		Name:      "tracked_total",
		Help:      "Number of activities added to the tracker, by type.",
	}, []string{"type"})
	summariesRendered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extrack",
		Subsystem: "activity",
		Name:      "summaries_rendered_total",
		Help:      "Number of summary lines rendered, by type.",
	}, []string{"type"})
)

func init() {
	prometheus.MustRegister(activitiesTracked, summariesRendered)
}

// RecordActivityTracked counts an activity added to the tracker.
func RecordActivityTracked(activityType string) {
	activitiesTracked.WithLabelValues(activityType).Inc()
}

// RecordSummaryRendered counts a rendered summary line.
func RecordSummaryRendered(activityType string) {
	summariesRendered.WithLabelValues(activityType).Inc()
}
