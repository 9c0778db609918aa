// Package burrow models the amphipod burrow puzzle as a search problem and
// solves it with package search.
//
// What:
//
//   - A burrow is an 11-cell hallway above four side rooms of equal depth.
//   - Four kinds of piece (A, B, C, D) must end up in their own room
//     (A leftmost, D rightmost). A step costs 1, 10, 100 or 1000 energy.
//   - A piece leaves its room only to stop in the hallway, never in front
//     of a room. From the hallway it only moves into its own room, and only
//     when that room holds no other kind.
//   - State is a comparable snapshot of the whole burrow, so two move
//     orders reaching the same layout are deduplicated by the search.
//
// How:
//
//   - Rules implements search.Graph, search.Goal and search.Estimator.
//   - Organize runs A* (or Dijkstra with WithDijkstra) and returns a Plan.
//   - Parse reads the usual '#'-framed diagram; State.String renders it.
//   - Unfold inserts the two folded rows, turning a depth-2 burrow into
//     a depth-4 one.
//
// Errors:
//
//   - ErrMalformed: the diagram or state breaks the burrow layout.
//   - ErrPieceCount: some kind does not appear exactly Depth times.
//   - ErrUnsolvable: no sequence of legal moves organizes the burrow.
package burrow
