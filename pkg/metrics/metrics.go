// Package metrics exposes Prometheus counters describing catalog activity.
// A nil *Collector is valid and records nothing.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "masthead"

// Entity kinds used as label values.
const (
	KindAuthor   = "author"
	KindMagazine = "magazine"
	KindArticle  = "article"
)

// Collector groups the catalog counters.
type Collector struct {
	registered *prometheus.CounterVec
	rejected   *prometheus.CounterVec
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		registered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_registered_total",
			Help:      "Number of entities added to the catalog registries.",
		}, []string{"kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "constructions_rejected_total",
			Help:      "Number of entity constructions rejected by validation.",
		}, []string{"kind", "field"}),
	}

	for _, col := range []prometheus.Collector{c.registered, c.rejected} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("could not register metric: %w", err)
		}
	}

	return c, nil
}

// Registered counts an entity of the given kind added to a registry.
func (c *Collector) Registered(kind string) {
	if c == nil {
		return
	}
	c.registered.WithLabelValues(kind).Inc()
}

// Rejected counts a construction of the given kind that failed validation
// on field.
func (c *Collector) Rejected(kind, field string) {
	if c == nil {
		return
	}
	c.rejected.WithLabelValues(kind, field).Inc()
}
