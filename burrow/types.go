package burrow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/bestfirst/search"
)

var (
	// ErrMalformed indicates a diagram or State that is not a valid burrow.
	ErrMalformed = errors.New("burrow: malformed burrow")
	// ErrPieceCount indicates a kind appearing other than Depth times.
	ErrPieceCount = errors.New("burrow: each kind must appear once per room row")
	// ErrUnsolvable indicates no legal move sequence reaches the goal.
	ErrUnsolvable = errors.New("burrow: burrow cannot be organized")
)

const (
	// HallwayLen is the number of hallway cells.
	HallwayLen = 11
	// NumRooms is the number of side rooms.
	NumRooms = 4
	// MaxDepth is the deepest supported room.
	MaxDepth = 4
)

// Kind identifies a piece. The zero value is an empty cell.
type Kind uint8

const (
	Empty Kind = iota
	Amber
	Bronze
	Copper
	Desert
)

// Energy returns the cost of one step for k.
func (k Kind) Energy() int {
	switch k {
	case Amber:
		return 1
	case Bronze:
		return 10
	case Copper:
		return 100
	case Desert:
		return 1000
	}
	return 0
}

// Home returns the index of the room k belongs in, or -1 for Empty.
func (k Kind) Home() int { return int(k) - 1 }

// String renders k as its diagram letter, '.' for Empty.
func (k Kind) String() string { return string(k.glyph()) }

func (k Kind) glyph() byte {
	if k == Empty || k > Desert {
		return '.'
	}
	return 'A' + byte(k-1)
}

// owner is the kind that belongs in room r.
func owner(r int) Kind { return Kind(r + 1) }

// State is one burrow layout. Rooms[r][0] is the slot next to the hallway;
// slots at Depth and beyond are unused and stay Empty. State is comparable
// and is used directly as the search state.
type State struct {
	Hallway [HallwayLen]Kind
	Rooms   [NumRooms][MaxDepth]Kind
	Depth   int
}

// Location addresses one cell of the burrow.
type Location struct {
	Room int // -1 for the hallway
	Pos  int // hallway column, or room slot counted from the top
}

// String renders l as "hallway 3" or "room B slot 0".
func (l Location) String() string {
	if l.Room < 0 {
		return fmt.Sprintf("hallway %d", l.Pos)
	}
	return fmt.Sprintf("room %s slot %d", owner(l.Room), l.Pos)
}

// column is the hallway column l is at or below.
func (l Location) column() int {
	if l.Room < 0 {
		return l.Pos
	}
	return doorway(l.Room)
}

// Move is a single piece movement between two consecutive states.
type Move struct {
	Kind     Kind
	From, To Location
	Energy   int
}

// String renders m as "B room C slot 0 -> hallway 3 (40)".
func (m Move) String() string {
	return fmt.Sprintf("%s %v -> %v (%d)", m.Kind, m.From, m.To, m.Energy)
}

// Plan is the outcome of Organize.
type Plan struct {
	Energy   int     // total energy spent
	Steps    []State // layouts from the start to the organized burrow inclusive
	Moves    []Move  // len(Steps)-1 moves between consecutive layouts
	Expanded int     // layouts accepted by the search
}

// Options configures Organize.
type Options struct {
	// Dijkstra disables the energy estimate.
	Dijkstra bool
	// OnStep observes the search, see search.StepFunc.
	OnStep search.StepFunc[State, int]
	// MaxExpansions caps accepted layouts (0 = unlimited).
	MaxExpansions int
	// Ctx cancels a long search.
	Ctx context.Context
	// Logger receives the search start/finish records.
	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns A* with no hooks and no limit.
func DefaultOptions() Options {
	return Options{}
}

// WithDijkstra turns off the energy estimate.
func WithDijkstra() Option {
	return func(o *Options) { o.Dijkstra = true }
}

// WithOnStep registers a search step callback.
func WithOnStep(fn search.StepFunc[State, int]) Option {
	return func(o *Options) { o.OnStep = fn }
}

// WithMaxExpansions caps the number of accepted layouts.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithContext sets a context checked once per accepted layout.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithLogger forwards a structured logger to the search.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
