package gridgraph

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/bestfirst/search"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell coordinate; X grows to the right, Y grows downwards.
// It is the search state of the grid adapter.
type Point struct {
	X, Y int
}

// String renders p as "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value that can be entered.
	// Cells below it are walls and have no incoming edges.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are passable), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as an implicit weighted graph. It is
// immutable once built.
//
// CellValues[y][x] holds the base input. Width and Height are the logical
// dimensions: for a grid produced by Tiled they are the base dimensions times
// the tile factor, and cell values of the extra tiles are derived on the fly.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	Tiles           int
	baseW, baseH    int
	minValue        int
	neighborOffsets [][2]int
}

// Route is the outcome of ShortestPath.
type Route struct {
	Risk     int     // total cost of entering every cell after the first
	Path     []Point // cells from start to goal inclusive
	Expanded int     // cells accepted by the search
}

// PathOptions configures ShortestPath.
type PathOptions struct {
	// AStar enables the distance heuristic. Off means plain Dijkstra.
	AStar bool
	// OnStep observes the search, see search.StepFunc.
	OnStep search.StepFunc[Point, int]
	// MaxExpansions caps accepted cells (0 = unlimited).
	MaxExpansions int
	// Logger receives the search start/finish records.
	Logger *slog.Logger
}

// PathOption configures PathOptions.
type PathOption func(*PathOptions)

// DefaultPathOptions returns Dijkstra search with no hooks and no limit.
func DefaultPathOptions() PathOptions {
	return PathOptions{}
}

// WithAStar switches ShortestPath to A* with the grid distance heuristic.
func WithAStar() PathOption {
	return func(o *PathOptions) { o.AStar = true }
}

// WithOnStep registers a search step callback.
func WithOnStep(fn search.StepFunc[Point, int]) PathOption {
	return func(o *PathOptions) { o.OnStep = fn }
}

// WithMaxExpansions caps the number of accepted cells.
func WithMaxExpansions(n int) PathOption {
	return func(o *PathOptions) { o.MaxExpansions = n }
}

// WithLogger forwards a structured logger to the search.
func WithLogger(l *slog.Logger) PathOption {
	return func(o *PathOptions) { o.Logger = l }
}
