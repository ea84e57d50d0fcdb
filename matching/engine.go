package matching

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/bipartite"
)

// none is the unmatched sentinel index.
const none = bipartite.Nil

// infinity marks a vertex not reached by the current layering.
const infinity = math.MaxInt

// Engine computes a maximum matching of one graph with Hopcroft–Karp.
//
// pair and dist are indexed by the graph's unified vertex space. pair[v] is
// v's partner or Nil; pair[Nil] stays Nil and only absorbs sentinel writes.
// dist is rebuilt by every layering pass and only read (apart from dead-end
// marks) by the sweep that follows. An Engine must not be used from several
// goroutines at once; distinct engines may share one graph.
type Engine struct {
	graph  *bipartite.Graph
	opts   Options
	log    *zap.Logger
	pair   []int
	dist   []int
	queue  []int
	stack  []frame
	size   int
	rounds int
}

// New prepares an engine for g. Returns ErrGraphNil or ErrOptionViolation.
func New(g *bipartite.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{
		graph: g,
		opts:  o,
		log:   o.Logger.Named("matching"),
	}, nil
}

// MaximumMatching runs Hopcroft–Karp to completion and returns the size of a
// maximum matching. Every call starts again from the empty matching.
func (e *Engine) MaximumMatching() int {
	// Background never cancels, so run cannot fail.
	_ = e.run(context.Background())

	return e.size
}

// Run is MaximumMatching with cancellation checked before every layering
// pass. On cancellation the partial matching stays readable via Pairs.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := e.run(ctx); err != nil {
		return nil, err
	}

	return &Result{Size: e.size, Rounds: e.rounds, Pairs: e.Pairs()}, nil
}

// Size returns the cardinality of the current matching.
func (e *Engine) Size() int { return e.size }

// Rounds returns how many layering passes found augmenting paths in the last run.
func (e *Engine) Rounds() int { return e.rounds }

// Mate returns the partner of v in unified index space, or Nil.
func (e *Engine) Mate(v int) int {
	if v <= none || v >= len(e.pair) {
		return none
	}

	return e.pair[v]
}

// Pairs snapshots the matching as side-local pairs ordered by left vertex.
func (e *Engine) Pairs() []Pair {
	out := make([]Pair, 0, e.size)
	left := e.graph.Left()
	for v := 1; v <= left && v < len(e.pair); v++ {
		if u := e.pair[v]; u != none {
			out = append(out, Pair{Left: v, Right: u - left})
		}
	}

	return out
}

// run drives the Layering → Done state machine.
func (e *Engine) run(ctx context.Context) error {
	e.size, e.rounds = 0, 0
	left, right := e.graph.Left(), e.graph.Right()
	if left == 0 || right == 0 {
		e.pair, e.dist = nil, nil
		e.opts.OnDone(0, 0)
		return nil
	}
	e.reset()

	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			e.log.Debug("matching canceled", zap.Int("round", round), zap.Int("size", e.size))
			return err
		}

		found := e.layer()
		free := e.freeLeft()
		e.log.Debug("layering done",
			zap.Int("round", round),
			zap.Int("free", free),
			zap.Bool("augmenting", found),
			zap.Int("distance", e.dist[none]))
		e.opts.OnRound(round, free, found)
		if !found {
			break
		}

		e.rounds++
		gained := 0
		for v := 1; v <= left; v++ {
			if e.pair[v] != none || !e.augment(v) {
				continue
			}
			gained++
			e.opts.OnAugment(round, v, e.pair[v]-left)
		}
		e.size += gained
		if e.opts.CheckInvariants {
			e.assertSymmetric()
		}
		e.log.Debug("sweep done", zap.Int("round", round), zap.Int("gained", gained), zap.Int("size", e.size))
	}

	e.log.Debug("matching complete", zap.Int("size", e.size), zap.Int("rounds", e.rounds))
	e.opts.OnDone(e.size, e.rounds)

	return nil
}

// reset sizes the state slices for the graph and clears the matching.
func (e *Engine) reset() {
	n := e.graph.Order()
	if cap(e.pair) < n {
		e.pair = make([]int, n)
		e.dist = make([]int, n)
	}
	e.pair = e.pair[:n]
	e.dist = e.dist[:n]
	clear(e.pair)
	if cap(e.queue) < e.graph.Left() {
		e.queue = make([]int, 0, e.graph.Left())
	}
}

// layer builds the BFS layering from all free left vertices and reports
// whether some free right vertex is reachable by an alternating path.
//
// Free right vertices are reached through their Nil partner, so dist[Nil]
// ends up as the length of the shortest augmenting path. Vertices at or past
// that distance are not expanded.
func (e *Engine) layer() bool {
	q := e.queue[:0]
	for v := 1; v <= e.graph.Left(); v++ {
		if e.pair[v] == none {
			e.dist[v] = 0
			q = append(q, v)
		} else {
			e.dist[v] = infinity
		}
	}
	e.dist[none] = infinity

	for head := 0; head < len(q); head++ {
		v := q[head]
		if e.dist[v] >= e.dist[none] {
			continue
		}
		for _, u := range e.graph.Adjacent(v) {
			w := e.pair[u]
			if e.dist[w] == infinity {
				e.dist[w] = e.dist[v] + 1
				if w != none {
					q = append(q, w)
				}
			}
		}
	}
	e.queue = q

	return e.dist[none] != infinity
}

// augment tries to extend the matching along one shortest augmenting path
// starting at the free left vertex v.
func (e *Engine) augment(v int) bool {
	if e.opts.Strategy == Recursive {
		return e.augmentRecursive(v)
	}

	return e.augmentIterative(v)
}

// freeLeft counts unmatched left vertices.
func (e *Engine) freeLeft() int {
	n := 0
	for v := 1; v <= e.graph.Left(); v++ {
		if e.pair[v] == none {
			n++
		}
	}

	return n
}

// assertSymmetric panics if pair[pair[v]] != v for some matched v.
func (e *Engine) assertSymmetric() {
	for v := 1; v < len(e.pair); v++ {
		u := e.pair[v]
		if u == none {
			continue
		}
		if e.pair[u] != v {
			panic(fmt.Sprintf("matching: asymmetric pair %d→%d→%d", v, u, e.pair[u]))
		}
	}
	if e.pair[none] != none {
		panic(fmt.Sprintf("matching: Nil slot holds %d", e.pair[none]))
	}
}
