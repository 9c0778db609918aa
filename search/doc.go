// Package search implements a generic best-first state-space search engine
// that runs as uniform-cost search (Dijkstra) or, given a heuristic, as A*.
//
// Overview:
//
//   - The engine knows nothing about states beyond Go equality: any
//     comparable type works, including large composite snapshots such as a
//     struct of arrays describing a whole puzzle configuration.
//   - Edges come from a domain-supplied neighbor function returning an
//     iter.Seq2 of (next state, edge cost) pairs, so implicit graphs
//     (grids, game trees) are never materialised.
//   - A min-heap Frontier orders nodes by Cost + Heuristic. Duplicate states
//     are pushed freely and discarded lazily when popped ("lazy decrease-key").
//   - A VisitedSet guarantees each state is accepted at most once.
//   - Predecessors are kept in an auxiliary state→state map and the path is
//     rebuilt by walking it back from the goal.
//
// Heuristic mode switch:
//
//   - Without WithHeuristic the heuristic is the zero function and the search
//     is exactly Dijkstra's algorithm.
//   - With an admissible heuristic (never overestimating the remaining cost)
//     the search is A*: same optimal cost, usually fewer expansions.
//   - Admissibility is the caller's responsibility and is not validated.
//
// Failure semantics:
//
//   - An exhausted frontier is reported as Result.Found == false with a nil
//     error. Whether that is an error is up to the domain.
//   - Negative edge costs are rejected with ErrNegativeCost.
//   - WithMaxExpansions and WithContext bound a search externally.
//
// Concurrency:
//
//   - Search is synchronous and single-threaded. Every call owns its
//     frontier, visited set and predecessor map; no state is shared between
//     calls, so independent searches may run in parallel goroutines.
//   - The OnStep callback runs on the search goroutine and may block; see
//     package observe for a bounded asynchronous hand-off.
//
// Complexity:
//
//   - Time:  O(E log E), E = number of pushed candidate nodes.
//   - Space: O(V + E), V = number of accepted states.
//
// Example usage:
//
//	res, err := search.Search(start, isGoal, neighbors,
//	    search.WithHeuristic(manhattan),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Println(res.Cost, res.Path)
//	}
package search
