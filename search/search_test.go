package search_test

import (
	"bytes"
	"context"
	"iter"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/search"
)

// edge is one outgoing arc of an explicit test graph.
type edge struct {
	to string
	w  int
}

// adjacency is an explicit directed weighted graph; slices keep the yield
// order deterministic.
type adjacency map[string][]edge

func (g adjacency) Neighbors(s string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, e := range g[s] {
			if !yield(e.to, e.w) {
				return
			}
		}
	}
}

// target builds a goal test for a single state.
func target(want string) search.GoalFunc[string] {
	return func(s string) bool { return s == want }
}

// buildTriangle: A→B(1), B→C(2), A→C(5). Cheapest A→C is 3 via B.
func buildTriangle() adjacency {
	return adjacency{
		"A": {{"B", 1}, {"C", 5}},
		"B": {{"C", 2}},
	}
}

func TestSearch_Validation(t *testing.T) {
	g := buildTriangle()

	_, err := search.Search[string, int]("A", nil, g.Neighbors)
	assert.ErrorIs(t, err, search.ErrNilGoal)

	_, err = search.Search[string, int]("A", target("C"), nil)
	assert.ErrorIs(t, err, search.ErrNilNeighbors)

	_, err = search.Search("A", target("C"), g.Neighbors, search.WithMaxExpansions[string, int](-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestSearch_Triangle(t *testing.T) {
	res, err := search.Search("A", target("C"), buildTriangle().Neighbors)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 3, res.Cost)
	if diff := cmp.Diff([]string{"A", "B", "C"}, res.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	goal, ok := res.Goal()
	assert.True(t, ok)
	assert.Equal(t, "C", goal)
}

func TestSearch_StartIsGoal(t *testing.T) {
	res, err := search.Search("A", target("A"), buildTriangle().Neighbors)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Zero(t, res.Cost)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Equal(t, 1, res.Expanded)
	assert.Equal(t, 1, res.Pushed)
}

func TestSearch_NotFound(t *testing.T) {
	// D is isolated from A.
	g := buildTriangle()
	g["D"] = []edge{{"A", 1}}

	res, err := search.Search("A", target("D"), g.Neighbors)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 3, res.Expanded) // A, B, C
	_, ok := res.Goal()
	assert.False(t, ok)
}

// TestSearch_PredecessorOfFirstAcceptance covers a state that is pushed again
// through a more expensive edge after it has been accepted. The reported
// path must follow the accepted (cheap) edge.
//
//	S→X(1), S→A(5), A→X(1), X→G(10)
//
// X is accepted from S at cost 1; A later pushes X again at cost 6.
func TestSearch_PredecessorOfFirstAcceptance(t *testing.T) {
	g := adjacency{
		"S": {{"X", 1}, {"A", 5}},
		"A": {{"X", 1}},
		"X": {{"G", 10}},
	}
	res, err := search.Search("S", target("G"), g.Neighbors)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 11, res.Cost)
	assert.Equal(t, []string{"S", "X", "G"}, res.Path)

	cost, err := search.PathCost(res.Path, g.Neighbors)
	require.NoError(t, err)
	assert.Equal(t, res.Cost, cost)
}

func TestSearch_ZeroCostEdges(t *testing.T) {
	g := adjacency{
		"A": {{"B", 0}, {"C", 1}},
		"B": {{"C", 0}},
	}
	res, err := search.Search("A", target("C"), g.Neighbors)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestSearch_NegativeCost(t *testing.T) {
	g := adjacency{"A": {{"B", -2}}}
	_, err := search.Search("A", target("B"), g.Neighbors)
	assert.ErrorIs(t, err, search.ErrNegativeCost)
}

func TestSearch_UnsignedCost(t *testing.T) {
	neighbors := func(n uint) iter.Seq2[uint, uint64] {
		return func(yield func(uint, uint64) bool) {
			if n < 10 {
				yield(n+1, uint64(n))
			}
		}
	}
	res, err := search.Search(uint(0), func(n uint) bool { return n == 10 }, neighbors)
	require.NoError(t, err)
	assert.Equal(t, uint64(45), res.Cost)
	assert.Len(t, res.Path, 11)
}

func TestSearch_FloatCost(t *testing.T) {
	neighbors := func(n int) iter.Seq2[int, float64] {
		return func(yield func(int, float64) bool) {
			if !yield(n+1, 0.5) {
				return
			}
			yield(n+2, 1.25)
		}
	}
	res, err := search.Search(0, func(n int) bool { return n == 4 }, neighbors)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.Cost, 1e-9)
}

func TestSearch_ExpansionLimit(t *testing.T) {
	// Infinite chain: 0 → 1 → 2 → …
	chain := func(n int) iter.Seq2[int, int] {
		return func(yield func(int, int) bool) { yield(n+1, 1) }
	}
	never := func(int) bool { return false }

	res, err := search.Search(0, never, chain, search.WithMaxExpansions[int, int](25))
	require.ErrorIs(t, err, search.ErrExpansionLimit)
	assert.False(t, res.Found)
	assert.Equal(t, 25, res.Expanded)
}

func TestSearch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Search("A", target("C"), buildTriangle().Neighbors,
		search.WithContext[string, int](ctx),
	)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_OnStep(t *testing.T) {
	g := adjacency{
		"A": {{"B", 1}, {"C", 4}},
		"B": {{"C", 1}, {"A", 1}},
		"C": {{"D", 1}},
	}
	var accepted []string
	candidates := 0
	onStep := func(n search.Node[string, int], ok bool) {
		if ok {
			accepted = append(accepted, n.State)
			return
		}
		candidates++
		assert.True(t, n.HasPredecessor, "candidate %s without predecessor", n.State)
	}

	res, err := search.Search("A", target("D"), g.Neighbors, search.WithOnStep(onStep))
	require.NoError(t, err)
	require.True(t, res.Found)

	// Every accepted state is distinct and counted once.
	seen := map[string]bool{}
	for _, s := range accepted {
		assert.False(t, seen[s], "state %s accepted twice", s)
		seen[s] = true
	}
	assert.Equal(t, res.Expanded, len(accepted))
	assert.Equal(t, res.Pushed, candidates+1)
	assert.Equal(t, []string{"A", "B", "C", "D"}, accepted)
}

func TestSearch_HeuristicIsApplied(t *testing.T) {
	var seen []int
	onStep := func(n search.Node[string, int], ok bool) {
		if ok {
			seen = append(seen, n.Priority())
		}
	}
	h := func(s string) int { return map[string]int{"A": 3, "B": 2, "C": 0}[s] }

	res, err := search.Search("A", target("C"), buildTriangle().Neighbors,
		search.WithHeuristic(h),
		search.WithOnStep(onStep),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Cost)
	// Accepted priorities never decrease under a consistent heuristic.
	for i := 1; i < len(seen); i++ {
		assert.LessOrEqual(t, seen[i-1], seen[i])
	}
}

func TestSearch_Idempotent(t *testing.T) {
	g := buildTriangle()
	first, err1 := search.Search("A", target("C"), g.Neighbors)
	second, err2 := search.Search("A", target("C"), g.Neighbors)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first.Found, second.Found)
	assert.Equal(t, first.Cost, second.Cost)
	assert.Equal(t, first.Expanded, second.Expanded)
}

func TestSearch_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := search.Search("A", target("C"), buildTriangle().Neighbors,
		search.WithLogger[string, int](logger),
	)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "search started")
	assert.Contains(t, out, "search finished")
	assert.Contains(t, out, "found=true")
	assert.Contains(t, out, "cost=3")
}

// goalGraph adds a goal test and an estimator to adjacency for Solve.
type goalGraph struct {
	adjacency
	goal string
	h    map[string]int
}

func (g goalGraph) IsGoal(s string) bool { return s == g.goal }
func (g goalGraph) Estimate(s string) int { return g.h[s] }

func TestSolve(t *testing.T) {
	p := goalGraph{adjacency: buildTriangle(), goal: "C", h: map[string]int{"A": 3, "B": 2}}

	res, err := search.Solve[string, int](p, "A")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Cost)

	// An explicit zero heuristic overrides the Estimator.
	var priorities []int
	res, err = search.Solve[string, int](p, "A",
		search.WithHeuristic(search.Zero[string, int]),
		search.WithOnStep(func(n search.Node[string, int], ok bool) {
			if ok {
				priorities = append(priorities, n.Priority())
			}
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Cost)
	assert.Equal(t, []int{0, 1, 3}, priorities)

	_, err = search.Solve[string, int](nil, "A")
	assert.ErrorIs(t, err, search.ErrNilNeighbors)
}
