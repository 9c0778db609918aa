package burrow

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	wallTop  = "#############"
	wallBase = "#########"
)

// folded holds the two room rows hidden in the depth-2 diagram, top first.
var folded = [2][NumRooms]Kind{
	{Desert, Copper, Bronze, Amber},
	{Desert, Bronze, Amber, Copper},
}

// Parse reads a burrow diagram:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// The hallway line may hold pieces; room lines may hold '.' for empty
// slots. Blank lines and trailing whitespace are ignored. Between 1 and
// MaxDepth room rows are accepted.
func Parse(r io.Reader) (State, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return State{}, fmt.Errorf("burrow: read input: %w", err)
	}

	depth := len(lines) - 3
	if depth < 1 || depth > MaxDepth {
		return State{}, fmt.Errorf("%w: %d lines, want 4 to %d", ErrMalformed, len(lines), MaxDepth+3)
	}
	if strings.TrimSpace(lines[0]) != wallTop {
		return State{}, fmt.Errorf("%w: line 1 is not the top wall", ErrMalformed)
	}
	if strings.TrimSpace(lines[len(lines)-1]) != wallBase {
		return State{}, fmt.Errorf("%w: line %d is not the bottom wall", ErrMalformed, len(lines))
	}

	s := State{Depth: depth}
	hall := lines[1]
	if len(hall) != HallwayLen+2 || hall[0] != '#' || hall[HallwayLen+1] != '#' {
		return State{}, fmt.Errorf("%w: line 2 is not a hallway", ErrMalformed)
	}
	for x := range HallwayLen {
		k, ok := kindOf(hall[x+1])
		if !ok {
			return State{}, fmt.Errorf("%w: %q at line 2 column %d", ErrMalformed, hall[x+1], x+2)
		}
		s.Hallway[x] = k
	}

	for slot := range depth {
		row := lines[2+slot]
		if len(row) < 2*NumRooms+3 {
			return State{}, fmt.Errorf("%w: line %d is too short", ErrMalformed, slot+3)
		}
		for col := 0; col < len(row); col++ {
			if col >= 3 && col <= 2*NumRooms+1 && col%2 == 1 {
				k, ok := kindOf(row[col])
				if !ok {
					return State{}, fmt.Errorf("%w: %q at line %d column %d", ErrMalformed, row[col], slot+3, col+1)
				}
				s.Rooms[(col-3)/2][slot] = k
				continue
			}
			if row[col] != '#' && row[col] != ' ' {
				return State{}, fmt.Errorf("%w: %q at line %d column %d", ErrMalformed, row[col], slot+3, col+1)
			}
		}
	}

	if err := s.validate(); err != nil {
		return State{}, err
	}

	return s, nil
}

// Unfold inserts the two folded rows between the rows of a depth-2 burrow.
func Unfold(s State) (State, error) {
	if s.Depth != 2 {
		return State{}, fmt.Errorf("%w: unfold needs depth 2, got %d", ErrMalformed, s.Depth)
	}
	out := s
	out.Depth = 4
	for r := range NumRooms {
		out.Rooms[r] = [MaxDepth]Kind{s.Rooms[r][0], folded[0][r], folded[1][r], s.Rooms[r][1]}
	}
	if err := out.validate(); err != nil {
		return State{}, err
	}

	return out, nil
}

// String renders s in the diagram format accepted by Parse.
func (s State) String() string {
	var sb strings.Builder
	sb.WriteString(wallTop)
	sb.WriteString("\n#")
	for _, k := range s.Hallway {
		sb.WriteByte(k.glyph())
	}
	sb.WriteString("#\n")
	for slot := range s.Depth {
		if slot == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for r := range NumRooms {
			sb.WriteByte(s.Rooms[r][slot].glyph())
			sb.WriteByte('#')
		}
		if slot == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	sb.WriteString(wallBase)
	sb.WriteByte('\n')

	return sb.String()
}

// validate checks the layout invariants the move rules rely on.
func (s State) validate() error {
	if s.Depth < 1 || s.Depth > MaxDepth {
		return fmt.Errorf("%w: depth %d", ErrMalformed, s.Depth)
	}
	var count [NumRooms + 1]int
	for x, k := range s.Hallway {
		if k > Desert {
			return fmt.Errorf("%w: unknown kind %d in hallway %d", ErrMalformed, k, x)
		}
		if k != Empty && isDoorway(x) {
			return fmt.Errorf("%w: %s stands in front of a room at hallway %d", ErrMalformed, k, x)
		}
		count[k]++
	}
	for r := range NumRooms {
		seen := false
		for slot, k := range s.Rooms[r] {
			if k > Desert {
				return fmt.Errorf("%w: unknown kind %d in room %s", ErrMalformed, k, owner(r))
			}
			if slot >= s.Depth {
				if k != Empty {
					return fmt.Errorf("%w: room %s slot %d below depth %d", ErrMalformed, owner(r), slot, s.Depth)
				}
				continue
			}
			if k == Empty && seen {
				return fmt.Errorf("%w: room %s has a gap at slot %d", ErrMalformed, owner(r), slot)
			}
			seen = seen || k != Empty
			count[k]++
		}
	}
	for k := Amber; k <= Desert; k++ {
		if count[k] != s.Depth {
			return fmt.Errorf("%w: %d of %s, want %d", ErrPieceCount, count[k], k, s.Depth)
		}
	}

	return nil
}

func kindOf(b byte) (Kind, bool) {
	switch {
	case b == '.':
		return Empty, true
	case b >= 'A' && b <= 'D':
		return Kind(b-'A') + Amber, true
	}
	return Empty, false
}
