// Package metrics exports path search reports as Prometheus metrics.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pdrpinto/gridpath"
)

// Outcome label values.
const (
	OutcomeFound     = "found"
	OutcomeNotFound  = "not_found"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Collector is a gridpath.Observer backed by Prometheus collectors.
type Collector struct {
	searches *prometheus.CounterVec
	duration prometheus.Histogram
	expanded prometheus.Histogram
}

var _ gridpath.Observer = (*Collector)(nil)

// NewCollector creates the collectors and registers them with registerer.
func NewCollector(registerer prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridpath_searches_total",
				Help: "Total number of path searches by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Wall-clock duration of path searches",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_expanded_nodes",
			Help:    "Nodes expanded per path search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	for _, collector := range []prometheus.Collector{c.searches, c.duration, c.expanded} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObserveSearch records one report.
func (c *Collector) ObserveSearch(report gridpath.SearchReport) {
	c.searches.WithLabelValues(Outcome(report)).Inc()
	c.duration.Observe(report.Duration.Seconds())
	c.expanded.Observe(float64(report.ExpandedNodes))
}

// Outcome classifies a report into one of the outcome label values.
func Outcome(report gridpath.SearchReport) string {
	switch {
	case errors.Is(report.Err, gridpath.ErrCancelled):
		return OutcomeCancelled
	case report.Err != nil:
		return OutcomeError
	case report.Found:
		return OutcomeFound
	default:
		return OutcomeNotFound
	}
}
