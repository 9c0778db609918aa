package gridgraph

import (
	"fmt"
	"io"

	"github.com/katalvlaran/bestfirst/search"
)

// ShortestPath finds the lowest-risk path from one cell to another. The
// start cell's own value is not counted; every entered cell adds its value.
//
// Behavior:
//  1. Validate that both endpoints are enterable cells.
//  2. Run search.Search over gg.Neighbors, with gg.Heuristic(to) when
//     WithAStar is given.
//  3. Convert NotFound into ErrNoPath.
//
// Complexity: O(N log N) with N = W×H×d pushed candidates worst case.
// Memory:     O(N).
func (gg *GridGraph) ShortestPath(from, to Point, opts ...PathOption) (Route, error) {
	cfg := DefaultPathOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := gg.Value(from); !ok {
		return Route{}, fmt.Errorf("%w: start %v", ErrOutOfBounds, from)
	}
	if _, ok := gg.Value(to); !ok {
		return Route{}, fmt.Errorf("%w: goal %v", ErrOutOfBounds, to)
	}

	searchOpts := []search.Option[Point, int]{
		search.WithOnStep(cfg.OnStep),
		search.WithMaxExpansions[Point, int](cfg.MaxExpansions),
		search.WithLogger[Point, int](cfg.Logger),
	}
	if cfg.AStar {
		searchOpts = append(searchOpts, search.WithHeuristic(gg.Heuristic(to)))
	}

	res, err := search.Search(from, func(p Point) bool { return p == to }, gg.Neighbors, searchOpts...)
	if err != nil {
		return Route{Expanded: res.Expanded}, fmt.Errorf("gridgraph: search %v→%v: %w", from, to, err)
	}
	if !res.Found {
		return Route{Expanded: res.Expanded}, fmt.Errorf("%w: %v→%v", ErrNoPath, from, to)
	}

	return Route{Risk: res.Cost, Path: res.Path, Expanded: res.Expanded}, nil
}

// LowestRisk parses a digit grid from r, tiles it factor×factor (factor 1
// keeps it as is) and returns the lowest-risk route from the top-left to the
// bottom-right corner.
func LowestRisk(r io.Reader, factor int, opts ...PathOption) (Route, error) {
	gg, err := ParseDigits(r, DefaultGridOptions())
	if err != nil {
		return Route{}, err
	}
	if factor != 1 {
		if gg, err = gg.Tiled(factor); err != nil {
			return Route{}, err
		}
	}
	from, to := gg.Corners()

	return gg.ShortestPath(from, to, opts...)
}
