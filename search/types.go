package search

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
)

// Sentinel errors returned by Search and Solve.
var (
	// ErrNilGoal indicates that no goal test was supplied.
	ErrNilGoal = errors.New("search: goal test is nil")

	// ErrNilNeighbors indicates that no neighbor function was supplied.
	ErrNilNeighbors = errors.New("search: neighbor function is nil")

	// ErrNegativeCost indicates that the neighbor function yielded an edge
	// with a negative cost. Best-first search is only correct for
	// non-negative edge costs.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned together with a partial Result when the
	// search accepted MaxExpansions states without reaching a goal.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBrokenPath is returned by PathCost when two consecutive states of a
	// path are not connected by the neighbor function.
	ErrBrokenPath = errors.New("search: consecutive path states are not connected")
)

// Cost is the set of numeric types usable as edge and path costs.
// Costs must be non-negative; unsigned kinds make that structural.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Node pairs a domain state with the accumulated cost of the path that
// reached it, a heuristic lower bound of the remaining cost and the state it
// was expanded from. HasPredecessor is false only for the start node.
type Node[S comparable, C Cost] struct {
	State          S
	Cost           C
	Heuristic      C
	Predecessor    S
	HasPredecessor bool
}

// Priority returns the frontier ordering key Cost + Heuristic.
func (n Node[S, C]) Priority() C { return n.Cost + n.Heuristic }

// NeighborFunc yields every (next state, edge cost) pair reachable from s.
type NeighborFunc[S comparable, C Cost] func(s S) iter.Seq2[S, C]

// GoalFunc reports whether s satisfies the goal.
type GoalFunc[S comparable] func(s S) bool

// HeuristicFunc returns a lower bound of the remaining cost from s to any goal.
// It must never overestimate, otherwise the first goal popped is not
// guaranteed to be optimal.
type HeuristicFunc[S comparable, C Cost] func(s S) C

// StepFunc observes the search. It is called with accepted=true when a node
// is popped and finalised, and with accepted=false for every candidate node
// pushed onto the frontier.
type StepFunc[S comparable, C Cost] func(node Node[S, C], accepted bool)

// Result is the outcome of a search.
//
//	Found    – a goal state was accepted; Cost and Path are meaningful.
//	Cost     – accumulated cost of Path.
//	Path     – states from start to goal inclusive.
//	Expanded – number of distinct states accepted (size of the visited set).
//	Pushed   – number of nodes pushed onto the frontier, start included.
type Result[S comparable, C Cost] struct {
	Found    bool
	Cost     C
	Path     []S
	Expanded int
	Pushed   int
}

// Goal returns the last state of the path and whether one exists.
func (r Result[S, C]) Goal() (S, bool) {
	if len(r.Path) == 0 {
		var zero S
		return zero, false
	}
	return r.Path[len(r.Path)-1], true
}

// Options configures a single search call.
//
// Heuristic     – remaining-cost estimate; zero function turns A* into Dijkstra.
// OnStep        – instrumentation callback, may block.
// MaxExpansions – stop after this many accepted states (0 = unlimited).
// Ctx           – checked once per pop; cancellation aborts the search.
// Logger        – optional structured logger for start/finish records.
type Options[S comparable, C Cost] struct {
	Heuristic     HeuristicFunc[S, C]
	OnStep        StepFunc[S, C]
	MaxExpansions int
	Ctx           context.Context
	Logger        *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option[S comparable, C Cost] func(*Options[S, C])

// DefaultOptions returns Options with:
//   - zero heuristic (plain Dijkstra)
//   - no-op step callback
//   - no expansion limit
//   - context.Background()
//   - no logger.
func DefaultOptions[S comparable, C Cost]() Options[S, C] {
	return Options[S, C]{
		Heuristic: func(S) C { return 0 },
		OnStep:    func(Node[S, C], bool) {},
		Ctx:       context.Background(),
	}
}

// WithHeuristic sets the remaining-cost estimate and thereby switches the
// search to A*. A nil function keeps the zero heuristic.
func WithHeuristic[S comparable, C Cost](h HeuristicFunc[S, C]) Option[S, C] {
	return func(o *Options[S, C]) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnStep registers an instrumentation callback.
func WithOnStep[S comparable, C Cost](fn StepFunc[S, C]) Option[S, C] {
	return func(o *Options[S, C]) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxExpansions caps the number of accepted states.
//
//	n > 0: stop with ErrExpansionLimit after n accepted states
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions[S comparable, C Cost](n int) Option[S, C] {
	return func(o *Options[S, C]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithContext sets a context that is checked once per pop.
func WithContext[S comparable, C Cost](ctx context.Context) Option[S, C] {
	return func(o *Options[S, C]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger enables Debug records at search start and completion.
func WithLogger[S comparable, C Cost](l *slog.Logger) Option[S, C] {
	return func(o *Options[S, C]) {
		o.Logger = l
	}
}
