package observe

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/bestfirst/search"
)

// PromSink exports step counts as Prometheus collectors:
//
//	<ns>_search_steps_total{kind="accepted"|"considered"}
//	<ns>_search_accepted_cost   (gauge, cost of the latest accepted state)
type PromSink[S comparable, C search.Cost] struct {
	steps *prometheus.CounterVec
	cost  prometheus.Gauge
}

// NewPromSink builds the collectors and registers them with reg when it is
// not nil.
func NewPromSink[S comparable, C search.Cost](reg prometheus.Registerer, namespace string) (*PromSink[S, C], error) {
	p := &PromSink[S, C]{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "steps_total",
			Help:      "Search steps by kind (accepted or considered).",
		}, []string{"kind"}),
		cost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "accepted_cost",
			Help:      "Path cost of the most recently accepted state.",
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{p.steps, p.cost} {
			if err := reg.Register(c); err != nil {
				return nil, fmt.Errorf("observe: register collector: %w", err)
			}
		}
	}

	return p, nil
}

// Observe records step. It never fails.
func (p *PromSink[S, C]) Observe(_ context.Context, step Step[S, C]) error {
	if !step.Accepted {
		p.steps.WithLabelValues("considered").Inc()
		return nil
	}
	p.steps.WithLabelValues("accepted").Inc()
	p.cost.Set(float64(step.Node.Cost))
	return nil
}
