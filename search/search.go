package search

import (
	"fmt"
	"time"
)

// Search runs a best-first search from start until a state satisfying isGoal
// is accepted or the frontier is exhausted. Functional options supply the
// heuristic (A*), a step callback, an expansion cap, a context and a logger.
//
// Returns:
//
//   - Result with Found=true, the optimal Cost and the Path start→goal, when a
//     goal is reached. Optimality requires non-negative edge costs and an
//     admissible heuristic; the latter is not validated.
//   - Result with Found=false and a nil error when no goal is reachable.
//   - ErrNilGoal / ErrNilNeighbors for missing functions,
//     ErrOptionViolation for invalid options,
//     ErrNegativeCost if an edge with cost < 0 is yielded,
//     ErrExpansionLimit (with the partial Result) when MaxExpansions is hit,
//     or the context error on cancellation.
//
// Algorithm:
//  1. Push a node for start with Cost 0 and Heuristic h(start).
//  2. Pop the node with the smallest Cost + Heuristic.
//  3. Skip it if its state is already in the visited set.
//  4. Accept it: insert into the visited set, record its predecessor,
//     call OnStep(node, true).
//  5. Stop if it satisfies isGoal.
//  6. For every (next, w) from neighbors push {next, Cost+w, h(next), state}
//     after calling OnStep(candidate, false). Nodes are pushed unconditionally;
//     already visited states are discarded on pop.
//
// Complexity:
//
//   - Time:  O(E log E) heap operations, E = number of pushed nodes.
//   - Space: O(V + E), V = number of accepted states.
func Search[S comparable, C Cost](
	start S,
	isGoal GoalFunc[S],
	neighbors NeighborFunc[S, C],
	opts ...Option[S, C],
) (Result[S, C], error) {
	cfg := DefaultOptions[S, C]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result[S, C]{}, cfg.err
	}
	if isGoal == nil {
		return Result[S, C]{}, ErrNilGoal
	}
	if neighbors == nil {
		return Result[S, C]{}, ErrNilNeighbors
	}

	r := &runner[S, C]{
		options:   cfg,
		isGoal:    isGoal,
		neighbors: neighbors,
		frontier:  NewFrontier[S, C](64),
		visited:   NewVisitedSet[S](64),
		pred:      make(map[S]S, 64),
	}

	began := time.Now()
	if cfg.Logger != nil {
		cfg.Logger.Debug("search started", "start", start, "max_expansions", cfg.MaxExpansions)
	}

	r.init(start)
	err := r.process()

	if cfg.Logger != nil {
		cfg.Logger.Debug("search finished",
			"found", r.res.Found,
			"cost", r.res.Cost,
			"expanded", r.res.Expanded,
			"pushed", r.res.Pushed,
			"path_len", len(r.res.Path),
			"elapsed", time.Since(began),
			"error", err,
		)
	}

	return r.res, err
}

// runner holds the mutable state of a single search. Nothing in it outlives
// the Search call.
type runner[S comparable, C Cost] struct {
	options   Options[S, C]
	isGoal    GoalFunc[S]
	neighbors NeighborFunc[S, C]
	frontier  *Frontier[S, C]
	visited   *VisitedSet[S]
	pred      map[S]S // accepted state → state it was expanded from
	res       Result[S, C]
}

// init seeds the frontier with the start node.
func (r *runner[S, C]) init(start S) {
	r.push(Node[S, C]{
		State:     start,
		Cost:      0,
		Heuristic: r.options.Heuristic(start),
	})
}

// push adds a node to the frontier and counts it.
func (r *runner[S, C]) push(n Node[S, C]) {
	r.frontier.Push(n)
	r.res.Pushed++
}

// process is the main loop. It terminates when a goal is accepted, the
// frontier empties, the expansion cap is hit, the context is cancelled or a
// negative edge is seen.
func (r *runner[S, C]) process() error {
	ctx := r.options.Ctx
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		current, ok := r.frontier.PopMin()
		if !ok {
			// Exhausted: NotFound is a valid outcome, not an error.
			return nil
		}

		// Stale duplicate: this state was already reached more cheaply.
		if !r.visited.Insert(current.State) {
			continue
		}
		if current.HasPredecessor {
			r.pred[current.State] = current.Predecessor
		}
		r.res.Expanded++
		r.options.OnStep(current, true)

		if r.isGoal(current.State) {
			r.res.Found = true
			r.res.Cost = current.Cost
			r.res.Path = ReconstructPath(r.pred, current.State)
			return nil
		}

		if limit := r.options.MaxExpansions; limit > 0 && r.res.Expanded >= limit {
			return fmt.Errorf("%w: %d states accepted", ErrExpansionLimit, r.res.Expanded)
		}

		if err := r.expand(current); err != nil {
			return err
		}
	}
}

// expand pushes one candidate per edge leaving current.
func (r *runner[S, C]) expand(current Node[S, C]) error {
	var zero C
	for next, w := range r.neighbors(current.State) {
		if w < zero {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, current.State, next, w)
		}
		candidate := Node[S, C]{
			State:          next,
			Cost:           current.Cost + w,
			Heuristic:      r.options.Heuristic(next),
			Predecessor:    current.State,
			HasPredecessor: true,
		}
		r.options.OnStep(candidate, false)
		r.push(candidate)
	}

	return nil
}
