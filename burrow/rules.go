package burrow

import "iter"

// stops are the hallway columns a piece may stop at.
var stops = [...]int{0, 1, 3, 5, 7, 9, 10}

// doorway is the hallway column in front of room r.
func doorway(r int) int { return 2 + 2*r }

func isDoorway(x int) bool { return x >= 2 && x <= 2*NumRooms && x%2 == 0 }

// Rules is the burrow move graph. It satisfies search.Problem[State, int].
type Rules struct{}

// IsGoal reports whether every piece is in its own room.
func (Rules) IsGoal(s State) bool { return s.IsGoal() }

// IsGoal reports whether the hallway is empty and every room holds only
// its own kind.
func (s State) IsGoal() bool {
	for _, k := range s.Hallway {
		if k != Empty {
			return false
		}
	}
	for r := range NumRooms {
		for slot := range s.Depth {
			if s.Rooms[r][slot] != owner(r) {
				return false
			}
		}
	}

	return true
}

// Neighbors yields every layout one legal move away with the energy the
// move costs. Moves into a home room come first, then moves out of rooms
// in room and stop order.
//
// A move between two rooms is expressed as two moves through a hallway
// stop; a stop lies between every pair of doorways, so no energy is lost.
func (Rules) Neighbors(s State) iter.Seq2[State, int] {
	return func(yield func(State, int) bool) {
		for x, k := range s.Hallway {
			if k == Empty {
				continue
			}
			home := k.Home()
			slot, ok := s.vacancy(home)
			if !ok || !s.clear(x, doorway(home)) {
				continue
			}
			next := s
			next.Hallway[x] = Empty
			next.Rooms[home][slot] = k
			if !yield(next, (distance(x, doorway(home))+slot+1)*k.Energy()) {
				return
			}
		}

		for r := range NumRooms {
			slot, ok := s.mover(r)
			if !ok {
				continue
			}
			k := s.Rooms[r][slot]
			for _, x := range stops {
				if !s.clear(doorway(r), x) {
					continue
				}
				next := s
				next.Rooms[r][slot] = Empty
				next.Hallway[x] = k
				if !yield(next, (slot+1+distance(doorway(r), x))*k.Energy()) {
					return
				}
			}
		}
	}
}

// Estimate is a lower bound on the energy still needed. Each piece not yet
// settled must at least walk to its own doorway and one step in:
//
//	hallway piece:          |x - door| + 1
//	piece in a foreign room: slot+1 up, |door - door'| across, 1 down
//	unsettled piece at home: slot+1 up, 2 across and back, 1 down
//
// Pieces move independently, so the per-piece sum stays admissible.
func (Rules) Estimate(s State) int {
	total := 0
	for x, k := range s.Hallway {
		if k != Empty {
			total += (distance(x, doorway(k.Home())) + 1) * k.Energy()
		}
	}
	for r := range NumRooms {
		settled := s.settledFrom(r)
		for slot := range settled {
			k := s.Rooms[r][slot]
			if k == Empty {
				continue
			}
			across := distance(doorway(r), doorway(k.Home()))
			if k.Home() == r {
				across = 2
			}
			total += (slot + 1 + across + 1) * k.Energy()
		}
	}

	return total
}

// vacancy returns the deepest empty slot of room r when the room holds no
// foreign kind.
func (s State) vacancy(r int) (int, bool) {
	for slot := s.Depth - 1; slot >= 0; slot-- {
		switch s.Rooms[r][slot] {
		case Empty:
			return slot, true
		case owner(r):
		default:
			return 0, false
		}
	}
	return 0, false
}

// mover returns the topmost slot of room r whose piece still has to leave,
// either because it is foreign or because it blocks a foreign piece.
func (s State) mover(r int) (int, bool) {
	for slot := range s.settledFrom(r) {
		if s.Rooms[r][slot] != Empty {
			return slot, true
		}
	}
	return 0, false
}

// settledFrom returns the smallest slot from which room r down to its
// bottom holds only its own kind.
func (s State) settledFrom(r int) int {
	slot := s.Depth
	for slot > 0 && s.Rooms[r][slot-1] == owner(r) {
		slot--
	}
	return slot
}

// clear reports whether every hallway cell after from up to and including
// to is empty.
func (s State) clear(from, to int) bool {
	if from == to {
		return true
	}
	step := 1
	if to < from {
		step = -1
	}
	for x := from + step; ; x += step {
		if s.Hallway[x] != Empty {
			return false
		}
		if x == to {
			return true
		}
	}
}

func distance(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
