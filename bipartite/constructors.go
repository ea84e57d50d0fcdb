// SPDX-License-Identifier: MIT
// Package: bimatch/bipartite
//
// constructors.go — Complete, Random and FromMatrix.
//
// Determinism:
//   • Edge emission order is i asc over left, inner j asc over right.
//   • Random draws exactly one Bernoulli trial per cross pair in that order,
//     so a fixed seed always yields the same graph.

package bipartite

import "fmt"

const (
	methodComplete   = "Complete"
	methodRandom     = "Random"
	methodFromMatrix = "FromMatrix"
)

// Complete returns K_{left,right}: every left vertex adjacent to every right one.
func Complete(left, right int) (*Graph, error) {
	g, err := NewGraph(left, right)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	for i := 1; i <= left; i++ {
		for j := 1; j <= right; j++ {
			if err = g.AddPair(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", methodComplete, err)
			}
		}
	}

	return g, nil
}

// Random samples each of the left·right cross pairs independently with
// probability p. For 0 < p < 1 an RNG is required (WithSeed / WithRand);
// p == 0 and p == 1 are deterministic and need none.
func Random(left, right int, p float64, opts ...Option) (*Graph, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandom, p, ErrInvalidProbability)
	}
	cfg := newBuildConfig(opts...)
	if cfg.rng == nil && p != 0 && p != 1 {
		return nil, fmt.Errorf("%s: p=%.6f: %w", methodRandom, p, ErrNeedRandSource)
	}

	g, err := NewGraph(left, right)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}
	for i := 1; i <= left; i++ {
		for j := 1; j <= right; j++ {
			keep := p == 1
			if cfg.rng != nil && p != 0 && p != 1 {
				keep = cfg.rng.Float64() < p
			}
			if !keep {
				continue
			}
			if err = g.AddPair(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", methodRandom, err)
			}
		}
	}

	return g, nil
}

// FromMatrix builds a graph with len(rows) left vertices and len(rows[0])
// right vertices; rows[i][j] == true adds the edge (i+1, j+1).
func FromMatrix(rows [][]bool) (*Graph, error) {
	left, right := len(rows), 0
	if left > 0 {
		right = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != right {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				methodFromMatrix, i, len(row), right, ErrNotRectangular)
		}
	}

	g, err := NewGraph(left, right)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromMatrix, err)
	}
	for i, row := range rows {
		for j, ok := range row {
			if !ok {
				continue
			}
			if err = g.AddPair(i+1, j+1); err != nil {
				return nil, fmt.Errorf("%s: %w", methodFromMatrix, err)
			}
		}
	}

	return g, nil
}
