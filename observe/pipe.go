package observe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bestfirst/search"
)

// DefaultCapacity is the queue length between the search and the sink.
const DefaultCapacity = 4

// PipeOption configures a Pipe.
type PipeOption func(*pipeOptions)

type pipeOptions struct {
	capacity int
	logger   *slog.Logger
}

// WithCapacity sets the queue length. 0 makes every step a rendezvous with
// the sink worker; negative values are ignored.
func WithCapacity(n int) PipeOption {
	return func(o *pipeOptions) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

// WithPipeLogger logs the first sink failure.
func WithPipeLogger(l *slog.Logger) PipeOption {
	return func(o *pipeOptions) { o.logger = l }
}

// Pipe decouples a search from a Sink through a bounded queue.
//
// OnStep must only be called from one goroutine (the search loop) and not
// after Close.
type Pipe[S comparable, C search.Cost] struct {
	queue     chan Step[S, C]
	group     *errgroup.Group
	seq       int
	closeOnce sync.Once
	err       error
}

// NewPipe starts the worker that drains steps into sink. The worker stops
// delivering after the first sink error but keeps draining, so the search
// never blocks on a dead sink. ctx is passed to every Observe call.
func NewPipe[S comparable, C search.Cost](ctx context.Context, sink Sink[S, C], opts ...PipeOption) *Pipe[S, C] {
	cfg := pipeOptions{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	g, gctx := errgroup.WithContext(ctx)
	p := &Pipe[S, C]{
		queue: make(chan Step[S, C], cfg.capacity),
		group: g,
	}
	g.Go(func() error {
		var failed error
		for step := range p.queue {
			if failed != nil {
				continue
			}
			if err := sink.Observe(gctx, step); err != nil {
				failed = fmt.Errorf("observe: step %d: %w", step.Seq, err)
				if cfg.logger != nil {
					cfg.logger.Warn("sink failed, dropping remaining steps", "seq", step.Seq, "error", err)
				}
			}
		}
		return failed
	})

	return p
}

// OnStep returns the callback to install with search.WithOnStep or an
// adapter's WithOnStep option. It blocks while the queue is full.
func (p *Pipe[S, C]) OnStep() search.StepFunc[S, C] {
	return func(node search.Node[S, C], accepted bool) {
		p.queue <- Step[S, C]{Seq: p.seq, Node: node, Accepted: accepted}
		p.seq++
	}
}

// Sent reports how many steps were queued so far.
func (p *Pipe[S, C]) Sent() int { return p.seq }

// Close flushes the queue, waits for the worker and returns the first sink
// error. It is safe to call more than once.
func (p *Pipe[S, C]) Close() error {
	p.closeOnce.Do(func() {
		close(p.queue)
		p.err = p.group.Wait()
	})
	return p.err
}
