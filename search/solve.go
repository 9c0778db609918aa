package search

import "iter"

// Graph is the single capability every domain adapter provides: the edges
// leaving a state. Adapters share no state with each other, only this
// calling convention.
type Graph[S comparable, C Cost] interface {
	Neighbors(s S) iter.Seq2[S, C]
}

// Goal is implemented by adapters that know their own goal test.
type Goal[S comparable] interface {
	IsGoal(s S) bool
}

// Estimator is implemented by adapters that can supply an admissible
// heuristic. Solve uses it unless a WithHeuristic option overrides it.
type Estimator[S comparable, C Cost] interface {
	Estimate(s S) C
}

// Problem bundles a Graph with its goal test.
type Problem[S comparable, C Cost] interface {
	Graph[S, C]
	Goal[S]
}

// Solve searches p from start. If p also implements Estimator, its Estimate
// method is installed as the heuristic before opts are applied, so an
// explicit WithHeuristic takes precedence.
func Solve[S comparable, C Cost](p Problem[S, C], start S, opts ...Option[S, C]) (Result[S, C], error) {
	if p == nil {
		return Result[S, C]{}, ErrNilNeighbors
	}
	all := make([]Option[S, C], 0, len(opts)+1)
	if est, ok := p.(Estimator[S, C]); ok {
		all = append(all, WithHeuristic[S, C](est.Estimate))
	}
	all = append(all, opts...)

	return Search[S, C](start, p.IsGoal, p.Neighbors, all...)
}

// Zero is the heuristic of plain Dijkstra search. Passing
// WithHeuristic(Zero[S, C]) to Solve disables an adapter's Estimator.
func Zero[S comparable, C Cost](S) C { return 0 }
