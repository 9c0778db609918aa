// Package gridgraph treats a 2D grid of cell values as an implicit weighted
// graph for package search, and finds lowest-risk routes across it.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Entering a cell costs its value; cells below LandThreshold are walls.
//   - Tiled(f) views the grid repeated f×f times. A cell in tile (c,r) with
//     base value v costs (v+r+c-1) mod 9 + 1, computed on demand.
//   - ShortestPath runs Dijkstra, or A* with a scaled distance heuristic.
//
// Why:
//
//   - Risk maps and cave floors: cheapest corner-to-corner crossings.
//   - Large derived maps without materialising every cell.
//
// Complexity:
//
//   - Neighbors:     O(d) per call (d = 4 or 8).
//   - ShortestPath:  O(W×H×d·log(W×H×d)), Memory: O(W×H×d).
//   - Tiled:         O(W×H) to recompute the minimum passable value.
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value that can be entered.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - WithAStar, WithOnStep, WithMaxExpansions, WithLogger for ShortestPath.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: ParseDigits met a non-digit character.
//   - ErrBadTileFactor: Tiled factor below 1.
//   - ErrOutOfBounds: an endpoint is outside the grid or a wall.
//   - ErrNoPath: the goal cannot be reached.
package gridgraph
