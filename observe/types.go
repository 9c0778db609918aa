package observe

import (
	"context"
	"errors"

	"github.com/katalvlaran/bestfirst/search"
)

// Step is one invocation of the search step callback.
type Step[S comparable, C search.Cost] struct {
	Seq      int // position in the callback sequence, from 0
	Node     search.Node[S, C]
	Accepted bool // true when Node was accepted, false when merely considered
}

// Sink consumes steps. Observe is called from a single goroutine.
type Sink[S comparable, C search.Cost] interface {
	Observe(ctx context.Context, step Step[S, C]) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc[S comparable, C search.Cost] func(ctx context.Context, step Step[S, C]) error

// Observe calls f.
func (f SinkFunc[S, C]) Observe(ctx context.Context, step Step[S, C]) error { return f(ctx, step) }

// Multi returns a Sink that hands every step to each sink in order and
// joins their errors.
func Multi[S comparable, C search.Cost](sinks ...Sink[S, C]) Sink[S, C] {
	return SinkFunc[S, C](func(ctx context.Context, step Step[S, C]) error {
		var errs []error
		for _, s := range sinks {
			if err := s.Observe(ctx, step); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
