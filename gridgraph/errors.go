package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates a character in textual input that is not a decimal digit.
	ErrBadCell = errors.New("gridgraph: cell is not a decimal digit")
	// ErrBadTileFactor indicates a tile factor smaller than one.
	ErrBadTileFactor = errors.New("gridgraph: tile factor must be at least 1")
	// ErrOutOfBounds indicates a path endpoint outside the grid or on an impassable cell.
	ErrOutOfBounds = errors.New("gridgraph: endpoint outside grid or impassable")
	// ErrNoPath indicates no path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
