package linkcheck

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/halcasteel/chrome-bookmark-organizer/bookmark"
)

// Metrics instruments URL probes.
type Metrics struct {
	checksTotal *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics registers probe metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		checksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bookmarks",
			Subsystem: "linkcheck",
			Name:      "checks_total",
			Help:      "URL probes by outcome.",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bookmarks",
			Subsystem: "linkcheck",
			Name:      "check_duration_seconds",
			Help:      "Time spent probing a single URL.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observe(result bookmark.ValidationResult) {
	outcome := "invalid"
	if result.Valid {
		outcome = "valid"
	}
	m.checksTotal.WithLabelValues(outcome).Inc()
	if result.ResponseTime > 0 {
		m.duration.Observe(result.ResponseTime)
	}
}
