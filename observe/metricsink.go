package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/bestfirst/search"
)

const meterName = "github.com/katalvlaran/bestfirst/observe"

// Metric names recorded by MetricSink.
const (
	MetricSteps        = "bestfirst.search.steps"
	MetricAcceptedCost = "bestfirst.search.accepted_cost"
)

var (
	acceptedAttrs   = metric.WithAttributes(attribute.Bool("accepted", true))
	consideredAttrs = metric.WithAttributes(attribute.Bool("accepted", false))
)

// MetricSink records steps with OpenTelemetry: a counter of steps split by
// the "accepted" attribute and a histogram of accepted costs.
type MetricSink[S comparable, C search.Cost] struct {
	steps metric.Int64Counter
	cost  metric.Float64Histogram
}

// NewMetricSink creates the instruments on meter; a nil meter uses the
// global provider.
func NewMetricSink[S comparable, C search.Cost](meter metric.Meter) (*MetricSink[S, C], error) {
	if meter == nil {
		meter = otel.Meter(meterName)
	}
	steps, err := meter.Int64Counter(MetricSteps,
		metric.WithDescription("Search steps, accepted or considered"),
	)
	if err != nil {
		return nil, fmt.Errorf("observe: create %s: %w", MetricSteps, err)
	}
	cost, err := meter.Float64Histogram(MetricAcceptedCost,
		metric.WithDescription("Path cost of accepted states"),
	)
	if err != nil {
		return nil, fmt.Errorf("observe: create %s: %w", MetricAcceptedCost, err)
	}

	return &MetricSink[S, C]{steps: steps, cost: cost}, nil
}

// Observe records step. It never fails.
func (m *MetricSink[S, C]) Observe(ctx context.Context, step Step[S, C]) error {
	if !step.Accepted {
		m.steps.Add(ctx, 1, consideredAttrs)
		return nil
	}
	m.steps.Add(ctx, 1, acceptedAttrs)
	m.cost.Record(ctx, float64(step.Node.Cost))
	return nil
}
