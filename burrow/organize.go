package burrow

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bestfirst/search"
)

// Organize finds the cheapest sequence of moves that puts every piece in its
// own room.
//
// Behavior:
//  1. Validate start (layout and piece counts).
//  2. Run search.Solve over Rules, with Rules.Estimate as heuristic unless
//     WithDijkstra is given.
//  3. Convert NotFound into ErrUnsolvable and describe every move.
//
// Returns a zero-energy Plan with a single step when start is organized.
func Organize(start State, opts ...Option) (Plan, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := start.validate(); err != nil {
		return Plan{}, err
	}

	searchOpts := []search.Option[State, int]{
		search.WithOnStep(cfg.OnStep),
		search.WithMaxExpansions[State, int](cfg.MaxExpansions),
		search.WithContext[State, int](cfg.Ctx),
		search.WithLogger[State, int](cfg.Logger),
	}
	if cfg.Dijkstra {
		searchOpts = append(searchOpts, search.WithHeuristic(search.Zero[State, int]))
	}

	res, err := search.Solve[State, int](Rules{}, start, searchOpts...)
	if err != nil {
		return Plan{Expanded: res.Expanded}, fmt.Errorf("burrow: organize: %w", err)
	}
	if !res.Found {
		return Plan{Expanded: res.Expanded}, fmt.Errorf("%w: %d layouts explored", ErrUnsolvable, res.Expanded)
	}

	moves := make([]Move, 0, len(res.Path)-1)
	for i := 1; i < len(res.Path); i++ {
		m, err := between(res.Path[i-1], res.Path[i])
		if err != nil {
			return Plan{}, err
		}
		moves = append(moves, m)
	}

	return Plan{Energy: res.Cost, Steps: res.Path, Moves: moves, Expanded: res.Expanded}, nil
}

var errNotAMove = errors.New("burrow: layouts differ by more than one move")

// between describes the single move turning a into b.
func between(a, b State) (Move, error) {
	var from, to []Location
	var kind Kind
	for x := range HallwayLen {
		switch {
		case a.Hallway[x] == b.Hallway[x]:
		case b.Hallway[x] == Empty:
			from, kind = append(from, Location{Room: -1, Pos: x}), a.Hallway[x]
		default:
			to = append(to, Location{Room: -1, Pos: x})
		}
	}
	for r := range NumRooms {
		for slot := range a.Depth {
			switch {
			case a.Rooms[r][slot] == b.Rooms[r][slot]:
			case b.Rooms[r][slot] == Empty:
				from, kind = append(from, Location{Room: r, Pos: slot}), a.Rooms[r][slot]
			default:
				to = append(to, Location{Room: r, Pos: slot})
			}
		}
	}
	if len(from) != 1 || len(to) != 1 {
		return Move{}, fmt.Errorf("%w:\n%v\n%v", errNotAMove, a, b)
	}

	steps := distance(from[0].column(), to[0].column())
	for _, l := range []Location{from[0], to[0]} {
		if l.Room >= 0 {
			steps += l.Pos + 1
		}
	}

	return Move{Kind: kind, From: from[0], To: to[0], Energy: steps * kind.Energy()}, nil
}
