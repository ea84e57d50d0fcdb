package matching

import (
	"fmt"

	"github.com/katalvlaran/bimatch/bipartite"
)

// ComputeMaximumMatching returns the size of a maximum matching of g, whose
// sides must hold leftCount and rightCount vertices. A zero count returns 0
// without touching the graph.
//
// The counts restate what the graph-building layer already decided; a nil
// graph or a mismatch means the caller broke that contract and the function
// panics rather than answer for a different graph.
func ComputeMaximumMatching(g *bipartite.Graph, leftCount, rightCount int) int {
	if leftCount < 0 || rightCount < 0 {
		panic(fmt.Sprintf("matching: negative counts %d, %d", leftCount, rightCount))
	}
	if leftCount == 0 || rightCount == 0 {
		return 0
	}
	if g == nil {
		panic("matching: nil graph")
	}
	if g.Left() != leftCount || g.Right() != rightCount {
		panic(fmt.Sprintf("matching: graph is %dx%d, caller declared %dx%d",
			g.Left(), g.Right(), leftCount, rightCount))
	}
	e, err := New(g)
	if err != nil {
		panic(err)
	}

	return e.MaximumMatching()
}
