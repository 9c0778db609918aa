package search

import "container/heap"

// Frontier is a min-heap of nodes ordered by ascending Cost + Heuristic.
// Duplicate states are allowed; stale entries are discarded by the search
// loop when popped ("lazy decrease-key"). Order among equal keys is
// unspecified.
//
// The zero value is an empty, ready-to-use frontier.
type Frontier[S comparable, C Cost] struct {
	items nodeHeap[S, C]
}

// NewFrontier returns an empty frontier with room for capacity nodes.
func NewFrontier[S comparable, C Cost](capacity int) *Frontier[S, C] {
	return &Frontier[S, C]{items: make(nodeHeap[S, C], 0, capacity)}
}

// Push inserts n in O(log n).
func (f *Frontier[S, C]) Push(n Node[S, C]) { heap.Push(&f.items, n) }

// PopMin removes and returns the node with the smallest priority in O(log n).
// The boolean is false when the frontier is empty.
func (f *Frontier[S, C]) PopMin() (Node[S, C], bool) {
	if len(f.items) == 0 {
		var zero Node[S, C]
		return zero, false
	}
	return heap.Pop(&f.items).(Node[S, C]), true
}

// Len returns the number of queued nodes, stale duplicates included.
func (f *Frontier[S, C]) Len() int { return len(f.items) }

// Empty reports whether no nodes are queued.
func (f *Frontier[S, C]) Empty() bool { return len(f.items) == 0 }

// nodeHeap implements heap.Interface; Less expresses "smaller key pops first"
// directly instead of negating costs.
type nodeHeap[S comparable, C Cost] []Node[S, C]

func (h nodeHeap[S, C]) Len() int           { return len(h) }
func (h nodeHeap[S, C]) Less(i, j int) bool { return h[i].Priority() < h[j].Priority() }
func (h nodeHeap[S, C]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be a Node[S, C].
func (h *nodeHeap[S, C]) Push(x any) { *h = append(*h, x.(Node[S, C])) }

// Pop is called by heap.Pop and removes the last element.
func (h *nodeHeap[S, C]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	var zero Node[S, C]
	old[n-1] = zero // drop the reference held by the backing array
	*h = old[:n-1]

	return item
}
