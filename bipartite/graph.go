// SPDX-License-Identifier: MIT
// Package: bimatch/bipartite
//
// graph.go — Graph storage, edge insertion and index translation.
//
// Contract:
//   • Index 0 is Nil; 1..left are left vertices; left+1..left+right are right.
//   • AddEdge stores each edge in both endpoint lists (insertion order kept).
//   • Duplicate edges are accepted; they only cost redundant traversal work.
//   • When either side is empty no adjacency storage is allocated at all.
//
// Complexity:
//   • NewGraph: O(left+right) time and space.
//   • AddEdge:  amortized O(1).
//   • Neighbors / Adjacent: O(1) to obtain, O(deg) to walk.

package bipartite

import (
	"fmt"
	"iter"
	"math"
)

// Graph is an adjacency-list bipartite graph over the unified index space.
type Graph struct {
	left  int     // |V|
	right int     // |U|
	adj   [][]int // adj[v] = neighbours of v in insertion order; nil if a side is empty
	size  int     // number of AddEdge calls that succeeded
}

// CheckCounts reports whether a graph with the given side sizes can be built:
// ErrNegativeCount for a negative side, ErrTooLarge when the index space
// 1+left+right would overflow an int.
func CheckCounts(left, right int) error {
	if left < 0 || right < 0 {
		return fmt.Errorf("counts %d, %d: %w", left, right, ErrNegativeCount)
	}
	if left > math.MaxInt-1-right {
		return fmt.Errorf("counts %d, %d: %w", left, right, ErrTooLarge)
	}

	return nil
}

// NewGraph returns an edgeless graph with the given side sizes.
// Returns ErrNegativeCount or ErrTooLarge, see CheckCounts.
func NewGraph(left, right int) (*Graph, error) {
	if err := CheckCounts(left, right); err != nil {
		return nil, fmt.Errorf("NewGraph: %w", err)
	}
	g := &Graph{left: left, right: right}
	// A graph with an empty side can never hold an edge.
	if left > 0 && right > 0 {
		g.adj = make([][]int, 1+left+right)
	}

	return g, nil
}

// Left returns the number of left vertices.
func (g *Graph) Left() int { return g.left }

// Right returns the number of right vertices.
func (g *Graph) Right() int { return g.right }

// Order returns the size of the unified index space, Nil included.
func (g *Graph) Order() int { return 1 + g.left + g.right }

// Size returns the number of edges added so far, duplicates included.
func (g *Graph) Size() int { return g.size }

// AddEdge connects v and u. One of them must be a left index and the other a
// right index; the order does not matter.
func (g *Graph) AddEdge(v, u int) error {
	sv, su := g.Side(v), g.Side(u)
	if sv == SideInvalid || sv == SideNil || su == SideInvalid || su == SideNil {
		return fmt.Errorf("AddEdge(%d, %d): order %d: %w", v, u, g.Order(), ErrVertexOutOfRange)
	}
	if sv == su {
		return fmt.Errorf("AddEdge(%d, %d): both %s: %w", v, u, sv, ErrSameSide)
	}
	g.adj[v] = append(g.adj[v], u)
	g.adj[u] = append(g.adj[u], v)
	g.size++

	return nil
}

// AddPair connects the i-th left vertex with the j-th right vertex, both
// 1-based and side-local.
func (g *Graph) AddPair(i, j int) error {
	if i < 1 || i > g.left || j < 1 || j > g.right {
		return fmt.Errorf("AddPair(%d, %d): sides %dx%d: %w", i, j, g.left, g.right, ErrVertexOutOfRange)
	}

	return g.AddEdge(g.LeftIndex(i), g.RightIndex(j))
}

// Adjacent returns the neighbour slice of v. The slice is owned by the graph
// and must not be modified. Invalid indices and Nil yield nil.
func (g *Graph) Adjacent(v int) []int {
	if v <= Nil || v >= len(g.adj) {
		return nil
	}

	return g.adj[v]
}

// Neighbors returns a restartable sequence over the neighbours of v in
// insertion order.
func (g *Graph) Neighbors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, u := range g.Adjacent(v) {
			if !yield(u) {
				return
			}
		}
	}
}

// Edges yields every stored edge once as (left, right) unified indices,
// ordered by left vertex and then by insertion.
func (g *Graph) Edges() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for v := 1; v <= g.left; v++ {
			for _, u := range g.Adjacent(v) {
				if !yield(v, u) {
					return
				}
			}
		}
	}
}

// HasEdge reports whether v and u are adjacent.
func (g *Graph) HasEdge(v, u int) bool {
	// scan the shorter list
	a, b := g.Adjacent(v), u
	if other := g.Adjacent(u); len(other) < len(a) {
		a, b = other, v
	}
	for _, w := range a {
		if w == b {
			return true
		}
	}

	return false
}

// LeftIndex maps the 1-based i-th left vertex to its unified index.
func (g *Graph) LeftIndex(i int) int { return i }

// RightIndex maps the 1-based j-th right vertex to its unified index.
func (g *Graph) RightIndex(j int) int { return g.left + j }

// Side classifies a unified index.
func (g *Graph) Side(v int) Side {
	switch {
	case v == Nil:
		return SideNil
	case v < 0 || v > g.left+g.right:
		return SideInvalid
	case v <= g.left:
		return SideLeft
	default:
		return SideRight
	}
}

// IsLeft reports whether v is a left vertex.
func (g *Graph) IsLeft(v int) bool { return g.Side(v) == SideLeft }

// IsRight reports whether v is a right vertex.
func (g *Graph) IsRight(v int) bool { return g.Side(v) == SideRight }

// Local converts a unified index back to its side and 1-based side-local
// position. Nil and invalid indices return position 0.
func (g *Graph) Local(v int) (Side, int) {
	switch s := g.Side(v); s {
	case SideLeft:
		return s, v
	case SideRight:
		return s, v - g.left
	default:
		return s, 0
	}
}
