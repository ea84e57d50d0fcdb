package matching_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/matching"
)

// EngineSuite runs every scenario under one augmenting-path strategy.
type EngineSuite struct {
	suite.Suite
	strategy matching.Strategy
}

func TestEngineIterative(t *testing.T) {
	suite.Run(t, &EngineSuite{strategy: matching.Iterative})
}

func TestEngineRecursive(t *testing.T) {
	suite.Run(t, &EngineSuite{strategy: matching.Recursive})
}

// run computes a matching of g with the suite's strategy and checks it.
func (s *EngineSuite) run(g *bipartite.Graph) *matching.Result {
	e, err := matching.New(g, matching.WithStrategy(s.strategy), matching.WithInvariantChecks())
	s.Require().NoError(err)
	res, err := e.Run(context.Background())
	s.Require().NoError(err)
	s.Require().Len(res.Pairs, res.Size)
	s.Require().NoError(matching.Verify(g, res.Pairs))

	return res
}

// TestAssignmentScenario is the five employees, five jobs example.
func (s *EngineSuite) TestAssignmentScenario() {
	g := buildGraph(s.T(), 5, 5, [][2]int{
		{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 1}, {2, 4},
		{3, 2}, {3, 4},
		{4, 2}, {4, 4}, {4, 5},
		{5, 1},
	})
	res := s.run(g)
	s.Equal(5, res.Size)
}

// TestSingleRightVertex: two candidates compete for one right vertex.
func (s *EngineSuite) TestSingleRightVertex() {
	g := buildGraph(s.T(), 2, 1, [][2]int{{1, 1}, {2, 1}})
	res := s.run(g)
	s.Equal(1, res.Size)
	s.Equal([]matching.Pair{{Left: 1, Right: 1}}, res.Pairs)
}

// TestNoEdges yields an empty matching.
func (s *EngineSuite) TestNoEdges() {
	g := buildGraph(s.T(), 1, 2, nil)
	res := s.run(g)
	s.Equal(0, res.Size)
	s.Equal(0, res.Rounds)
	s.Empty(res.Pairs)
}

// TestEmptySides covers zero-sized sides.
func (s *EngineSuite) TestEmptySides() {
	for _, dims := range [][2]int{{0, 0}, {0, 4}, {4, 0}} {
		g, err := bipartite.NewGraph(dims[0], dims[1])
		s.Require().NoError(err)
		res := s.run(g)
		s.Equal(0, res.Size, "dims %v", dims)
	}
}

// TestComplete checks K_{m,n} against min(m, n).
func (s *EngineSuite) TestComplete() {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {7, 3}, {12, 12}} {
		g, err := bipartite.Complete(dims[0], dims[1])
		s.Require().NoError(err)
		res := s.run(g)
		s.Equal(min(dims[0], dims[1]), res.Size, "K_%d,%d", dims[0], dims[1])
	}
}

// TestDuplicateEdges must not inflate the matching.
func (s *EngineSuite) TestDuplicateEdges() {
	g := buildGraph(s.T(), 2, 2, [][2]int{{1, 1}, {1, 1}, {2, 1}, {2, 1}})
	res := s.run(g)
	s.Equal(1, res.Size)
}

// TestStaircase forces one augmenting path through every vertex.
func (s *EngineSuite) TestStaircase() {
	const n = 2000
	res := s.run(staircase(s.T(), n))
	s.Equal(n, res.Size)
	s.Equal(2, res.Rounds)
	for i, p := range res.Pairs {
		s.Equal(matching.Pair{Left: i + 1, Right: i + 1}, p)
	}
}

// TestRandomAgainstReference compares with a simple augmenting-path search.
func (s *EngineSuite) TestRandomAgainstReference() {
	for seed := int64(1); seed <= 40; seed++ {
		left, right := 5+int(seed%13), 4+int(seed%9)
		g, err := bipartite.Random(left, right, 0.25, bipartite.WithSeed(seed))
		s.Require().NoError(err)
		res := s.run(g)
		s.Equal(kuhnSize(g), res.Size, "seed %d", seed)
		s.LessOrEqual(res.Size, min(left, right))
	}
}

// TestStrategiesAgree checks that both searches pick the same edges.
func TestStrategiesAgree(t *testing.T) {
	t.Parallel()
	for seed := int64(1); seed <= 20; seed++ {
		g, err := bipartite.Random(30, 25, 0.1, bipartite.WithSeed(seed))
		require.NoError(t, err)

		it, err := matching.New(g, matching.WithStrategy(matching.Iterative))
		require.NoError(t, err)
		rec, err := matching.New(g, matching.WithStrategy(matching.Recursive))
		require.NoError(t, err)

		require.Equal(t, it.MaximumMatching(), rec.MaximumMatching(), "seed %d", seed)
		require.Equal(t, it.Pairs(), rec.Pairs(), "seed %d", seed)
	}
}

// TestIdempotentConstruction runs on two independently built, equal graphs
// and reruns one engine.
func TestIdempotentConstruction(t *testing.T) {
	t.Parallel()
	a, err := bipartite.Random(40, 40, 0.08, bipartite.WithSeed(7))
	require.NoError(t, err)
	b, err := bipartite.Random(40, 40, 0.08, bipartite.WithSeed(7))
	require.NoError(t, err)

	ea, err := matching.New(a)
	require.NoError(t, err)
	eb, err := matching.New(b)
	require.NoError(t, err)

	first := ea.MaximumMatching()
	assert.Equal(t, first, eb.MaximumMatching())
	assert.Equal(t, first, ea.MaximumMatching(), "rerun starts from scratch")
	assert.Equal(t, ea.Pairs(), eb.Pairs())
}

// TestMate checks partner lookups in unified index space.
func TestMate(t *testing.T) {
	g := buildGraph(t, 2, 2, [][2]int{{1, 2}, {2, 1}})
	e, err := matching.New(g)
	require.NoError(t, err)
	require.Equal(t, 2, e.MaximumMatching())

	assert.Equal(t, g.RightIndex(2), e.Mate(1))
	assert.Equal(t, 1, e.Mate(g.RightIndex(2)))
	assert.Equal(t, g.RightIndex(1), e.Mate(2))
	assert.Equal(t, bipartite.Nil, e.Mate(bipartite.Nil))
	assert.Equal(t, bipartite.Nil, e.Mate(99))
	assert.Equal(t, 2, e.Size())
	assert.Equal(t, 1, e.Rounds())
}

// TestNew_Errors verifies nil graphs and invalid options are rejected.
func TestNew_Errors(t *testing.T) {
	_, err := matching.New(nil)
	require.ErrorIs(t, err, matching.ErrGraphNil)

	g := buildGraph(t, 1, 1, nil)
	_, err = matching.New(g, matching.WithStrategy(matching.Strategy(9)))
	require.ErrorIs(t, err, matching.ErrOptionViolation)
}

// TestRun_Canceled stops before the first round.
func TestRun_Canceled(t *testing.T) {
	g := buildGraph(t, 2, 2, [][2]int{{1, 1}, {2, 2}})
	e, err := matching.New(g)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := e.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, res)
	assert.Equal(t, 0, e.Size())
}

// recorder is an Observer that stores every callback.
type recorder struct {
	rounds   []bool
	augments [][3]int
	done     [2]int
	doneHits int
}

func (r *recorder) OnRound(_, _ int, found bool) { r.rounds = append(r.rounds, found) }
func (r *recorder) OnAugment(round, left, right int) { r.augments = append(r.augments, [3]int{round, left, right}) }
func (r *recorder) OnDone(size, rounds int) { r.done = [2]int{size, rounds}; r.doneHits++ }

// TestObserver checks hook ordering and payloads on the staircase graph.
func TestObserver(t *testing.T) {
	rec := &recorder{}
	e, err := matching.New(staircase(t, 4), matching.WithObserver(rec))
	require.NoError(t, err)
	require.Equal(t, 4, e.MaximumMatching())

	assert.Equal(t, []bool{true, true, false}, rec.rounds)
	assert.Equal(t, [][3]int{{1, 1, 2}, {1, 2, 3}, {1, 3, 4}, {2, 4, 4}}, rec.augments)
	assert.Equal(t, [2]int{4, 2}, rec.done)
	assert.Equal(t, 1, rec.doneHits)
}

// TestOnAugmentOverride shows a single hook replacing the observer's one.
func TestOnAugmentOverride(t *testing.T) {
	var count int
	g := buildGraph(t, 2, 2, [][2]int{{1, 1}, {2, 2}})
	e, err := matching.New(g,
		matching.WithObserver(&recorder{}),
		matching.WithOnAugment(func(int, int, int) { count++ }),
	)
	require.NoError(t, err)
	require.Equal(t, 2, e.MaximumMatching())
	assert.Equal(t, 2, count)
}

// TestLogger checks that rounds and completion are logged at debug level.
func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	e, err := matching.New(staircase(t, 3), matching.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, 3, e.MaximumMatching())

	assert.Equal(t, 3, logs.FilterMessage("layering done").Len())
	assert.Equal(t, 2, logs.FilterMessage("sweep done").Len())
	done := logs.FilterMessage("matching complete").All()
	require.Len(t, done, 1)
	assert.Equal(t, "matching", done[0].LoggerName)
	assert.EqualValues(t, 3, done[0].ContextMap()["size"])
}

func TestParseStrategy(t *testing.T) {
	s, err := matching.ParseStrategy("Recursive")
	require.NoError(t, err)
	assert.Equal(t, matching.Recursive, s)
	s, err = matching.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, matching.Iterative, s)
	_, err = matching.ParseStrategy("greedy")
	require.ErrorIs(t, err, matching.ErrUnknownStrategy)
	assert.Equal(t, "iterative", matching.Iterative.String())
	assert.Equal(t, "Strategy(7)", matching.Strategy(7).String())
}
