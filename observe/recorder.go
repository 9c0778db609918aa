package observe

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/katalvlaran/bestfirst/search"
)

// Frame is one accepted state as a renderer would draw it.
type Frame[S comparable, C search.Cost] struct {
	Seq      int // Step.Seq of the acceptance
	Index    int // acceptance order, from 0
	State    S
	Cost     C
	Priority C
}

// RecorderOption configures a Recorder.
type RecorderOption func(*recorderOptions)

type recorderOptions struct {
	every int
}

// Every keeps one frame out of n accepted states: the first, the (n+1)th
// and so on. n ≤ 1 keeps every frame. Counts and links are always complete.
func Every(n int) RecorderOption {
	return func(o *recorderOptions) {
		if n > 1 {
			o.every = n
		}
	}
}

// Recorder is an in-memory Sink. It is safe to read while a Pipe feeds it.
type Recorder[S comparable, C search.Cost] struct {
	mu         sync.Mutex
	every      int
	accepted   int
	frames     []Frame[S, C]
	considered map[S]int
	links      map[S]S
}

// NewRecorder returns an empty Recorder.
func NewRecorder[S comparable, C search.Cost](opts ...RecorderOption) *Recorder[S, C] {
	cfg := recorderOptions{every: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Recorder[S, C]{
		every:      cfg.every,
		considered: make(map[S]int),
		links:      make(map[S]S),
	}
}

// Observe records step. It never fails.
func (r *Recorder[S, C]) Observe(_ context.Context, step Step[S, C]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := step.Node
	if !step.Accepted {
		r.considered[n.State]++
		return nil
	}
	if n.HasPredecessor {
		r.links[n.State] = n.Predecessor
	}
	if r.accepted%r.every == 0 {
		r.frames = append(r.frames, Frame[S, C]{
			Seq:      step.Seq,
			Index:    r.accepted,
			State:    n.State,
			Cost:     n.Cost,
			Priority: n.Priority(),
		})
	}
	r.accepted++

	return nil
}

// Accepted returns the number of accepted states seen.
func (r *Recorder[S, C]) Accepted() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accepted
}

// Frames returns a copy of the kept frames in acceptance order.
func (r *Recorder[S, C]) Frames() []Frame[S, C] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.frames)
}

// Considered returns how many times s was offered as a candidate.
func (r *Recorder[S, C]) Considered(s S) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.considered[s]
}

// Trail follows the recorded predecessor links back from s and returns the
// states from the start to s. A state never accepted yields just [s].
func (r *Recorder[S, C]) Trail(s S) []S {
	r.mu.Lock()
	links := maps.Clone(r.links)
	r.mu.Unlock()
	return search.ReconstructPath(links, s)
}
