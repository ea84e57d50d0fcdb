package matching

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/bimatch/bipartite"
)

// Verify checks that pairs is a matching of g: every pair names an existing
// edge and no vertex appears in two pairs. All violations are reported
// together.
func Verify(g *bipartite.Graph, pairs []Pair) error {
	if g == nil {
		return ErrGraphNil
	}
	var (
		err       error
		usedLeft  = make(map[int]int, len(pairs))
		usedRight = make(map[int]int, len(pairs))
	)
	for k, p := range pairs {
		if p.Left < 1 || p.Left > g.Left() || p.Right < 1 || p.Right > g.Right() {
			err = multierr.Append(err, fmt.Errorf("pair %d (%d, %d): %w", k, p.Left, p.Right, ErrPairOutOfRange))
			continue
		}
		if prev, ok := usedLeft[p.Left]; ok {
			err = multierr.Append(err, fmt.Errorf("pair %d: left %d already in pair %d: %w", k, p.Left, prev, ErrVertexReused))
		}
		if prev, ok := usedRight[p.Right]; ok {
			err = multierr.Append(err, fmt.Errorf("pair %d: right %d already in pair %d: %w", k, p.Right, prev, ErrVertexReused))
		}
		usedLeft[p.Left], usedRight[p.Right] = k, k
		if !g.HasEdge(g.LeftIndex(p.Left), g.RightIndex(p.Right)) {
			err = multierr.Append(err, fmt.Errorf("pair %d (%d, %d): %w", k, p.Left, p.Right, ErrNotAnEdge))
		}
	}

	return err
}
