package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bipartite"
)

// buildGraph creates a left×right graph from 1-based side-local pairs.
func buildGraph(t testing.TB, left, right int, edges [][2]int) *bipartite.Graph {
	t.Helper()
	g, err := bipartite.NewGraph(left, right)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddPair(e[0], e[1]))
	}

	return g
}

// kuhnSize is a plain O(V·E) augmenting-path reference used to cross-check
// the engine on random graphs.
func kuhnSize(g *bipartite.Graph) int {
	left := g.Left()
	mateOfRight := make(map[int]int)
	var try func(v int, seen map[int]bool) bool
	try = func(v int, seen map[int]bool) bool {
		for _, u := range g.Adjacent(v) {
			if seen[u] {
				continue
			}
			seen[u] = true
			w, taken := mateOfRight[u]
			if !taken || try(w, seen) {
				mateOfRight[u] = v
				return true
			}
		}
		return false
	}
	size := 0
	for v := 1; v <= left; v++ {
		if try(v, map[int]bool{}) {
			size++
		}
	}

	return size
}

// staircase returns an n×n graph whose last augmenting path runs through
// every vertex: left i prefers right i+1 and falls back to right i.
func staircase(t testing.TB, n int) *bipartite.Graph {
	t.Helper()
	g, err := bipartite.NewGraph(n, n)
	require.NoError(t, err)
	for i := 1; i <= n; i++ {
		if i < n {
			require.NoError(t, g.AddPair(i, i+1))
		}
		require.NoError(t, g.AddPair(i, i))
	}

	return g
}
