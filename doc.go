// Package bestfirst is a generic best-first search engine for implicit
// graphs, with two ready-made domain adapters and pluggable observation.
//
// What is bestfirst?
//
//	One priority-ordered search loop that covers both:
//		• Uniform-cost search (Dijkstra): no heuristic
//		• A*: an admissible heuristic added to the path cost
//	over any comparable state type and any numeric cost type. States and
//	edges are never materialised up front; an adapter yields them on demand.
//
// Why use it?
//
//   - Small API: Search(start, isGoal, neighbors, opts...)
//   - Generic: states are any comparable value, costs any integer or float
//   - Lazy: duplicates in the frontier instead of decrease-key
//   - Observable: a step callback sees every considered and accepted node
//
// Subpackages:
//
//	search/    Node, Frontier, VisitedSet, Search, Solve, ReconstructPath
//	gridgraph/ digit grids as weighted graphs, tiled views, lowest-risk routes
//	burrow/    the amphipod burrow puzzle as a search problem
//	observe/   step pipes, recorders, slog, OpenTelemetry and Prometheus sinks
//
// Quick ASCII example:
//
//	    S──1──A
//	    │     │
//	    4     1
//	    │     │
//	    B──1──G
//
//	Search from S to G returns cost 2 along S, A, G.
//
//	go get github.com/katalvlaran/bestfirst
package bestfirst
