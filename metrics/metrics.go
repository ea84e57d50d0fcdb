// Package metrics exports matching progress as Prometheus metrics.
//
// Collector implements matching.Observer, so wiring it is one option:
//
//	reg := prometheus.NewRegistry()
//	c, err := metrics.NewCollector(reg)
//	e, err := matching.New(g, matching.WithObserver(c))
//	e.MaximumMatching()
//	metrics.WriteTextfile("bimatch.prom", reg)
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bimatch"

// Collector counts rounds and augmentations and records the size of the last
// completed matching.
type Collector struct {
	runs          prometheus.Counter
	rounds        *prometheus.CounterVec
	augmentations prometheus.Counter
	size          prometheus.Gauge
	free          prometheus.Gauge
}

// NewCollector creates the metrics and registers them with reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed maximum matching computations.",
		}),
		rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_total",
			Help:      "Layering passes, by whether an augmenting path was found.",
		}, []string{"found"}),
		augmentations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "augmentations_total",
			Help:      "Augmenting paths applied to a matching.",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "matching_size",
			Help:      "Cardinality of the last completed matching.",
		}),
		free: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "free_left_vertices",
			Help:      "Unmatched left vertices after the latest layering pass.",
		}),
	}
	for _, m := range []prometheus.Collector{c.runs, c.rounds, c.augmentations, c.size, c.free} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// OnRound implements matching.Observer.
func (c *Collector) OnRound(_, free int, found bool) {
	label := "false"
	if found {
		label = "true"
	}
	c.rounds.WithLabelValues(label).Inc()
	c.free.Set(float64(free))
}

// OnAugment implements matching.Observer.
func (c *Collector) OnAugment(_, _, _ int) {
	c.augmentations.Inc()
}

// OnDone implements matching.Observer.
func (c *Collector) OnDone(size, _ int) {
	c.runs.Inc()
	c.size.Set(float64(size))
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
