package gridgraph

import (
	"iter"

	"github.com/katalvlaran/bestfirst/search"
)

// Neighbors yields every enterable cell adjacent to p under gg.Conn together
// with the cost of entering it (its value). Cells outside the grid and walls
// are absent. It satisfies search.Graph[Point, int].
// Complexity: O(d), d = 4 or 8.
func (gg *GridGraph) Neighbors(p Point) iter.Seq2[Point, int] {
	return func(yield func(Point, int) bool) {
		for _, d := range gg.neighborOffsets {
			next := Point{p.X + d[0], p.Y + d[1]}
			v, ok := gg.Value(next)
			if !ok {
				continue
			}
			if !yield(next, v) {
				return
			}
		}
	}
}

// Heuristic returns an admissible estimate of the cost from any cell to goal:
// the minimum number of moves (Manhattan distance under Conn4, Chebyshev
// distance under Conn8) times the smallest passable cell value. Scaling by
// the minimum keeps the estimate a lower bound even when cells cost less
// than 1; with a minimum of 0 it degrades to the zero heuristic.
func (gg *GridGraph) Heuristic(goal Point) search.HeuristicFunc[Point, int] {
	unit := gg.minValue
	if unit <= 0 {
		return search.Zero[Point, int]
	}
	if gg.Conn == Conn8 {
		return func(p Point) int { return unit * max(abs(goal.X-p.X), abs(goal.Y-p.Y)) }
	}

	return func(p Point) int { return unit * (abs(goal.X-p.X) + abs(goal.Y-p.Y)) }
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
