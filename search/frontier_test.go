package search_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/search"
)

func TestFrontier_Empty(t *testing.T) {
	var f search.Frontier[string, int]
	assert.True(t, f.Empty())
	assert.Zero(t, f.Len())

	_, ok := f.PopMin()
	assert.False(t, ok)
}

func TestFrontier_AscendingPriority(t *testing.T) {
	f := search.NewFrontier[int, int](0)
	rnd := rand.New(rand.NewSource(42))

	want := make([]int, 0, 200)
	for i := 0; i < 200; i++ {
		cost, h := rnd.Intn(1000), rnd.Intn(50)
		f.Push(search.Node[int, int]{State: i, Cost: cost, Heuristic: h})
		want = append(want, cost+h)
	}
	require.Equal(t, 200, f.Len())
	sort.Ints(want)

	got := make([]int, 0, 200)
	for !f.Empty() {
		n, ok := f.PopMin()
		require.True(t, ok)
		got = append(got, n.Priority())
	}
	assert.Equal(t, want, got)
}

func TestFrontier_DuplicatesKept(t *testing.T) {
	f := search.NewFrontier[string, int](4)
	f.Push(search.Node[string, int]{State: "X", Cost: 5})
	f.Push(search.Node[string, int]{State: "X", Cost: 2})
	f.Push(search.Node[string, int]{State: "Y", Cost: 3})

	assert.Equal(t, 3, f.Len())
	n, _ := f.PopMin()
	assert.Equal(t, "X", n.State)
	assert.Equal(t, 2, n.Cost)
	n, _ = f.PopMin()
	assert.Equal(t, "Y", n.State)
	n, _ = f.PopMin()
	assert.Equal(t, "X", n.State)
	assert.Equal(t, 5, n.Cost)
}

// TestFrontier_NoSignInversion checks that the ordering holds next to the
// zero boundary, where a negated-key max-heap is easy to get wrong.
func TestFrontier_NoSignInversion(t *testing.T) {
	f := search.NewFrontier[string, uint8](0)
	f.Push(search.Node[string, uint8]{State: "big", Cost: 255})
	f.Push(search.Node[string, uint8]{State: "zero", Cost: 0})
	f.Push(search.Node[string, uint8]{State: "one", Cost: 1})

	var order []string
	for !f.Empty() {
		n, _ := f.PopMin()
		order = append(order, n.State)
	}
	assert.Equal(t, []string{"zero", "one", "big"}, order)
}

func TestVisitedSet(t *testing.T) {
	type snapshot struct {
		cells [4][2]byte
		lane  [7]byte
	}
	v := search.NewVisitedSet[snapshot](0)

	a := snapshot{cells: [4][2]byte{{'A', 'B'}}}
	b := a // structurally equal, distinct value
	c := a
	c.lane[3] = 'D'

	assert.False(t, v.Contains(a))
	assert.True(t, v.Insert(a))
	assert.True(t, v.Contains(b))
	assert.False(t, v.Insert(b), "structurally equal state inserted twice")
	assert.True(t, v.Insert(c))
	assert.Equal(t, 2, v.Len())
}

func TestReconstructPath(t *testing.T) {
	pred := map[string]string{"B": "A", "C": "B", "D": "C"}
	assert.Equal(t, []string{"A", "B", "C", "D"}, search.ReconstructPath(pred, "D"))
	assert.Equal(t, []string{"A"}, search.ReconstructPath(pred, "A"))
}

func TestPathCost(t *testing.T) {
	g := buildTriangle()

	cost, err := search.PathCost([]string{"A", "B", "C"}, g.Neighbors)
	require.NoError(t, err)
	assert.Equal(t, 3, cost)

	cost, err = search.PathCost([]string{"A"}, g.Neighbors)
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = search.PathCost([]string{"C", "A"}, g.Neighbors)
	assert.ErrorIs(t, err, search.ErrBrokenPath)
}
