// Package metrics exports catalog fetch activity as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fabler/jetflix/internal/catalog"
)

const namespace = "jetflix"

// Fetch outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Collector records coordinator lifecycle events. It implements
// catalog.Observer.
type Collector struct {
	fetchTotal     *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec
	fetchDiscarded *prometheus.CounterVec
	fetchInflight  *prometheus.GaugeVec
}

var _ catalog.Observer = (*Collector)(nil)

// NewCollector registers the fetch metrics with reg. A nil reg uses the
// default registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		fetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Completed catalog fetches by section and outcome",
		}, []string{"section", "outcome"}),

		fetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of completed catalog fetches",
			Buckets:   prometheus.DefBuckets,
		}, []string{"section"}),

		fetchDiscarded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_discarded_total",
			Help:      "Fetch results dropped because a newer refresh or close superseded them",
		}, []string{"section"}),

		fetchInflight: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fetch_inflight",
			Help:      "Fetches started and not yet finished or discarded",
		}, []string{"section"}),
	}
}

func (c *Collector) FetchStarted(name string) {
	c.fetchInflight.WithLabelValues(name).Inc()
}

func (c *Collector) FetchFinished(name string, err error, elapsed time.Duration) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	c.fetchInflight.WithLabelValues(name).Dec()
	c.fetchTotal.WithLabelValues(name, outcome).Inc()
	c.fetchDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}

func (c *Collector) FetchDiscarded(name string) {
	c.fetchInflight.WithLabelValues(name).Dec()
	c.fetchDiscarded.WithLabelValues(name).Inc()
}
