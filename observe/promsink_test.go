package observe

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/search"
)

func TestPromSink(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink[string, int](reg, "test")
	require.NoError(t, err)

	ctx := context.Background()
	steps := []Step[string, int]{
		{Seq: 0, Node: search.Node[string, int]{State: "A"}, Accepted: true},
		{Seq: 1, Node: search.Node[string, int]{State: "B", Cost: 2}},
		{Seq: 2, Node: search.Node[string, int]{State: "C", Cost: 5}},
		{Seq: 3, Node: search.Node[string, int]{State: "B", Cost: 2}, Accepted: true},
		{Seq: 4, Node: search.Node[string, int]{State: "C", Cost: 5}, Accepted: true},
	}
	for _, st := range steps {
		require.NoError(t, sink.Observe(ctx, st))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(sink.steps.WithLabelValues("accepted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(sink.steps.WithLabelValues("considered")))
	assert.Equal(t, 5.0, testutil.ToFloat64(sink.cost))

	n, err := testutil.GatherAndCount(reg, "test_search_steps_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = NewPromSink[string, int](reg, "test")
	assert.Error(t, err, "duplicate registration")

	unregistered, err := NewPromSink[string, int](nil, "")
	require.NoError(t, err)
	require.NoError(t, unregistered.Observe(ctx, steps[0]))
}
