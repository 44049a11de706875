package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ratcode/oncode/core"
)

// GraphSuite exercises the resolver against the six concrete solving
// scenarios: aux rule, pure propagation, mixed propagation/aux
// interleaving, post-done redundant ingestion, stepping mode and
// determinism under replay.
type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestAuxRuleFires covers scenario 1: two message nodes behind a single
// auxiliary, each recovered by its own singleton check block, with the
// auxiliary itself falling out via the aux rule once both are solved.
func (s *GraphSuite) TestAuxRuleFires() {
	g := core.NewGraph(2, 1, 2+1+2)
	g.WireAuxiliary([][]int{{0, 1}}) // a0 -> {m0, m1}

	_, err := g.NewCheckNode([]int{0}) // c0 = {m0}
	require.NoError(s.T(), err)
	done, solved := g.Resolve(0)
	require.False(s.T(), done)
	require.Equal(s.T(), []int{0}, solved)
	require.Equal(s.T(), []int{3}, g.RawXORList(0)) // c0's id is 3

	_, err = g.NewCheckNode([]int{1}) // c1 = {m1}
	require.NoError(s.T(), err)
	done, solved = g.Resolve(0)
	require.True(s.T(), done)
	require.ElementsMatch(s.T(), []int{1, 2}, solved) // m1, then a0

	require.True(s.T(), g.Solved(2)) // a0
	require.Equal(s.T(), []int{0, 1}, g.RawXORList(2))
}

// TestChainedPropagation covers scenario 2: three message nodes behind
// one auxiliary, recovered entirely through propagation off overlapping
// check blocks; the same Resolve call keeps draining after done and
// solves the auxiliary by the aux rule.
func (s *GraphSuite) TestChainedPropagation() {
	g := core.NewGraph(3, 1, 3+1+3)
	g.WireAuxiliary([][]int{{0, 1, 2}}) // a0 -> {m0, m1, m2}

	_, _ = g.NewCheckNode([]int{0, 1, 2}) // c0, id 4
	_, _ = g.NewCheckNode([]int{0})       // c1, id 5
	_, _ = g.NewCheckNode([]int{1})       // c2, id 6

	done, solved := g.Resolve(0)
	require.True(s.T(), done)
	require.Contains(s.T(), solved, 2) // m2 recovered via c0's propagation
	require.Equal(s.T(), []int{4, 0, 1}, g.RawXORList(2))
}

// TestAuxAndPropagationInterleave covers scenario 3: a check block that
// references an auxiliary node directly, and a later propagation that
// folds a solved auxiliary's xor-list into a message node's.
func (s *GraphSuite) TestAuxAndPropagationInterleave() {
	g := core.NewGraph(2, 1, 2+1+2)
	g.WireAuxiliary([][]int{{0, 1}}) // a0 -> {m0, m1}

	_, _ = g.NewCheckNode([]int{2}) // c0 = {a0}, id 3
	done, solved := g.Resolve(0)
	require.False(s.T(), done)
	require.Equal(s.T(), []int{2}, solved) // a0 solved via propagation off c0
	require.Equal(s.T(), []int{3}, g.RawXORList(2))
	require.Equal(s.T(), 2, g.UnsolvedDownCount(2)) // u[a0] untouched by this path

	_, _ = g.NewCheckNode([]int{0, 2}) // c1 = {m0, a0}, id 4
	done, solved = g.Resolve(0)
	require.True(s.T(), done)
	require.Equal(s.T(), []int{0, 1}, solved) // m0 then m1
	require.Equal(s.T(), []int{4, 2}, g.RawXORList(0))
	require.Equal(s.T(), []int{3, 0}, g.RawXORList(1))
}

// TestRedundantIngestAfterDone covers scenario 4: once every message is
// solved, a check block referencing only already-solved nodes is created
// and immediately decommissioned without disturbing done.
func (s *GraphSuite) TestRedundantIngestAfterDone() {
	g := core.NewGraph(2, 1, 2+1+3)
	g.WireAuxiliary([][]int{{0, 1}})
	_, _ = g.NewCheckNode([]int{0})
	_, _ = g.NewCheckNode([]int{1})
	done, _ := g.Resolve(0)
	require.True(s.T(), done)

	_, err := g.NewCheckNode([]int{0, 1})
	require.NoError(s.T(), err)
	done, solved := g.Resolve(0)
	require.True(s.T(), done)
	require.Empty(s.T(), solved)
}

// TestSteppingModeOrder covers scenario 5: with a one-step bound, four
// message nodes behind a shared auxiliary are emitted one per call, in
// arrival order, followed by the auxiliary itself.
func (s *GraphSuite) TestSteppingModeOrder() {
	g := core.NewGraph(4, 1, 4+1+4)
	g.WireAuxiliary([][]int{{0, 1, 2, 3}})

	for i := 0; i < 4; i++ {
		_, err := g.NewCheckNode([]int{i})
		require.NoError(s.T(), err)
	}

	var order []int
	for i := 0; i < 5; i++ {
		_, solved := g.Resolve(1)
		require.Len(s.T(), solved, 1)
		order = append(order, solved[0])
	}
	require.Equal(s.T(), []int{0, 1, 2, 3, 4}, order)
}

// TestDeterministicReplay covers scenario 6: replaying the same sequence
// of check blocks against a fresh Graph produces identical xor-lists.
func (s *GraphSuite) TestDeterministicReplay() {
	build := func() *core.Graph {
		g := core.NewGraph(3, 1, 3+1+3)
		g.WireAuxiliary([][]int{{0, 1, 2}})
		_, _ = g.NewCheckNode([]int{0, 1, 2})
		_, _ = g.NewCheckNode([]int{0})
		_, _ = g.NewCheckNode([]int{1})
		g.Resolve(0)

		return g
	}

	a, b := build(), build()
	for n := 0; n < a.NodeCount(); n++ {
		require.Equal(s.T(), a.Solved(n), b.Solved(n))
		if a.Solved(n) {
			require.Equal(s.T(), a.RawXORList(n), b.RawXORList(n))
		}
	}
}

// TestCapacityExhausted verifies ErrCapacity once the pre-sized node
// space is exceeded.
func (s *GraphSuite) TestCapacityExhausted() {
	g := core.NewGraph(1, 0, 1)
	_, err := g.NewCheckNode([]int{0})
	require.Error(s.T(), err)
	require.ErrorIs(s.T(), err, core.ErrCapacity)
}

// TestZeroMessageBlocksIsImmediatelyDone covers the boundary case of a
// Graph with no message nodes: done from construction, nothing to solve.
func (s *GraphSuite) TestZeroMessageBlocksIsImmediatelyDone() {
	g := core.NewGraph(0, 0, 1)
	require.True(s.T(), g.Done())
}
