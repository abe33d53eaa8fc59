package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	feedBuildCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "account_activity",
		Subsystem: "feed",
		Name:      "builds_total",
		Help:      "Number of activity feed computations per view.",
	}, []string{"view"})

	feedItemsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "account_activity",
		Subsystem: "feed",
		Name:      "last_build_items",
		Help:      "Item count of the most recent feed computation per view.",
	}, []string{"view"})

	lastBuildGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "account_activity",
		Subsystem: "feed",
		Name:      "last_build_timestamp_seconds",
		Help:      "Unix timestamp of the most recent feed computation per view.",
	}, []string{"view"})
)

func init() {
	prometheus.MustRegister(feedBuildCounter, feedItemsGauge, lastBuildGauge)
}

// RecordFeedBuilt updates the build counters for one feed computation.
func RecordFeedBuilt(view string, items int) {
	feedBuildCounter.WithLabelValues(view).Inc()
	feedItemsGauge.WithLabelValues(view).Set(float64(items))
	lastBuildGauge.WithLabelValues(view).Set(float64(time.Now().Unix()))
}
