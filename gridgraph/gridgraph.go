package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		Tiles:           1,
		baseW:           w,
		baseH:           h,
		neighborOffsets: offsets,
	}
	gg.minValue = gg.minPassable()

	return gg, nil
}

// ParseDigits reads one row per line, one decimal digit per cell, and builds
// a GridGraph. Blank lines are skipped and surrounding whitespace is trimmed.
// Returns ErrBadCell (wrapped with its position) for any other character.
func ParseDigits(r io.Reader, opts GridOptions) (*GridGraph, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadCell, ch, line, col+1)
			}
			row = append(row, int(ch-'0'))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}

	return NewGridGraph(rows, opts)
}

// Tiled returns a view of the base grid repeated factor times in each
// direction. A cell in tile (tileCol, tileRow) with base value v has value
//
//	(v + tileRow + tileCol - 1) mod 9 + 1
//
// computed on demand; the base tile (0,0) keeps its values. Walls stay
// walls in every tile. Tiling is always relative to the base grid.
// Complexity: O(W×H) for the minimum-value scan, no extra cell memory.
func (gg *GridGraph) Tiled(factor int) (*GridGraph, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadTileFactor, factor)
	}
	view := *gg
	view.Tiles = factor
	view.Width = gg.baseW * factor
	view.Height = gg.baseH * factor
	view.minValue = view.minPassable()

	return &view, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Value returns the cost of entering p and whether p can be entered at all
// (inside the grid and not a wall).
// Complexity: O(1).
func (gg *GridGraph) Value(p Point) (int, bool) {
	if !gg.InBounds(p.X, p.Y) {
		return 0, false
	}
	tileCol, bx := p.X/gg.baseW, p.X%gg.baseW
	tileRow, by := p.Y/gg.baseH, p.Y%gg.baseH
	v := gg.CellValues[by][bx]
	if v < gg.LandThreshold {
		return v, false
	}

	return wrap(v, tileRow+tileCol), true
}

// Corners returns the top-left and bottom-right cells of the logical grid.
func (gg *GridGraph) Corners() (topLeft, bottomRight Point) {
	return Point{0, 0}, Point{gg.Width - 1, gg.Height - 1}
}

// MinValue returns the smallest value of any passable cell, or 0 when the
// grid has none.
func (gg *GridGraph) MinValue() int { return gg.minValue }

// String renders the logical grid, one digit per cell; walls print as '#'.
func (gg *GridGraph) String() string {
	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			v, ok := gg.Value(Point{x, y})
			switch {
			case !ok:
				sb.WriteByte('#')
			case v >= 0 && v <= 9:
				sb.WriteByte(byte('0' + v))
			default:
				sb.WriteByte('?')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// wrap applies the tile transform for a tile at Manhattan tile distance k.
func wrap(v, k int) int {
	if k == 0 {
		return v
	}
	return (v+k-1)%9 + 1
}

// minPassable scans every base cell against every tile shift that occurs in
// the view. Shifts repeat with period 9, so at most 9 are checked.
func (gg *GridGraph) minPassable() int {
	maxShift := 2 * (gg.Tiles - 1)
	if maxShift > 8 {
		maxShift = 8
	}
	lowest, seen := 0, false
	for _, row := range gg.CellValues {
		for _, v := range row {
			if v < gg.LandThreshold {
				continue
			}
			for k := 0; k <= maxShift; k++ {
				if w := wrap(v, k); !seen || w < lowest {
					lowest, seen = w, true
				}
			}
		}
	}

	return lowest
}
