// Package bipartite provides the adjacency-list representation of a
// bipartite graph used by the matching engine.
//
// Vertices live in one shared index space of size 1+|V|+|U|:
//
//	index 0             — Nil, the "no partner" sentinel
//	indices 1..|V|      — left vertices
//	indices |V|+1..|V|+|U| — right vertices
//
// For example, with |V| = 3 and |U| = 2 and the edges v1–u2, v2–u1, v3–u1,
// v3–u2 the adjacency lists look like:
//
//	0 [Nil]
//	1 [v1] → [5]
//	2 [v2] → [4]
//	3 [v3] → [4 5]
//	4 [u1] → [2 3]
//	5 [u2] → [1 3]
//
// Every edge is stored in both endpoint lists because the engine walks edges
// from either side. AddEdge only accepts a left index paired with a right
// index, so the "left–right only" invariant holds by construction and is
// never re-checked afterwards.
//
// Side-local identifiers (the i-th left vertex, the j-th right vertex) are
// translated with LeftIndex / RightIndex and back with Local, so callers that
// prefer tagged identifiers never do index arithmetic by hand.
//
// Constructors:
//
//	NewGraph(left, right)   — empty graph, edges added with AddEdge / AddPair
//	Complete(left, right)   — K_{left,right}
//	Random(left, right, p)  — each cross pair kept with probability p
//	FromMatrix(rows)        — rows[i][j] == true ⇒ edge (i+1, j+1)
//
// A Graph is not safe for concurrent mutation. Once built it is read-only for
// the matching engine and may be shared between engines.
package bipartite
