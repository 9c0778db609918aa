package search

import "fmt"

// ReconstructPath walks pred backwards from goal until it reaches a state
// with no predecessor (the start) and returns the states in forward order.
// pred must be acyclic, which holds for maps built by Search since a state
// only gets an entry when it is accepted, after its predecessor.
func ReconstructPath[S comparable](pred map[S]S, goal S) []S {
	path := []S{goal}
	for cur := goal; ; {
		prev, ok := pred[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost re-derives the cost of path through neighbors: for every
// consecutive pair it takes the cheapest edge from the first state to the
// second. Returns ErrBrokenPath if a pair is not connected. An empty or
// single-state path costs zero.
func PathCost[S comparable, C Cost](path []S, neighbors NeighborFunc[S, C]) (C, error) {
	var total C
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		best, found := C(0), false
		for next, w := range neighbors(from) {
			if next != to {
				continue
			}
			if !found || w < best {
				best, found = w, true
			}
		}
		if !found {
			return total, fmt.Errorf("%w: %v→%v at index %d", ErrBrokenPath, from, to, i)
		}
		total += best
	}

	return total, nil
}
