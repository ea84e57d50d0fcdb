// Package matching computes maximum-cardinality matchings of bipartite graphs
// built with package bipartite, using the Hopcroft–Karp algorithm.
//
// # Algorithm
//
// Each round has two phases:
//
//   - Layering (BFS): starting from every free left vertex at distance 0,
//     alternate non-matching and matching edges and record the layer of each
//     reached left vertex. Free right vertices are reached through their Nil
//     partner, so dist[Nil] becomes the length of the shortest augmenting
//     path. Expansion stops at that length.
//
//   - Augmentation (DFS): from every free left vertex, in increasing index
//     order, follow only edges that step exactly one layer deeper. A found
//     path is flipped into the matching; a vertex that leads nowhere is
//     marked infinite so no later search in the same round revisits it.
//
// The engine stops when layering reaches no free right vertex. Rounds are
// O(√V), each O(E), so the total is O(E·√V).
//
//	free L ──▶ R ══▶ L ──▶ R ══▶ L ──▶ free R
//	   0            1            2
//
// (── non-matching edge, ══ matching edge, numbers are layers)
//
// # API
//
//	e, err := matching.New(g,
//	    matching.WithStrategy(matching.Iterative),
//	    matching.WithLogger(logger),
//	)
//	size := e.MaximumMatching()   // total, never fails
//	res, err := e.Run(ctx)        // same, cancellable between rounds
//	pairs := e.Pairs()            // matched edges, side-local 1-based
//
//	size := matching.ComputeMaximumMatching(g, left, right)
//	err := matching.Verify(g, pairs)
//
// Iterative (the default) and Recursive produce identical matchings; the
// iterative search keeps its frames on the heap, so long augmenting paths
// cannot exhaust the goroutine stack.
//
// # Errors
//
//	ErrGraphNil        - New or Verify received a nil graph.
//	ErrOptionViolation - an Option carried an invalid value.
//	ErrPairOutOfRange, ErrVertexReused, ErrNotAnEdge - Verify findings,
//	    combined with go.uber.org/multierr.
//
// Matching itself cannot fail. ComputeMaximumMatching panics when its
// declared counts disagree with the graph, and WithInvariantChecks makes the
// engine panic if the matching ever loses symmetry.
//
// # Concurrency
//
// An Engine owns its pair and dist state and must be driven by one goroutine.
// Any number of engines may read the same graph concurrently.
package matching
