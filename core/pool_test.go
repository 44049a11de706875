package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ratcode/oncode/core"
)

// PoolSuite exercises up-edge bookkeeping and cascade fan-out in
// isolation from the higher-level scenarios in graph_test.go.
type PoolSuite struct {
	suite.Suite
}

func TestPoolSuite(t *testing.T) {
	suite.Run(t, new(PoolSuite))
}

// TestUpEdgeSymmetry checks that wiring an auxiliary node's neighbours
// makes them visible as up-neighbours of each message node: solving a
// message node cascades along its up-edge and decrements u[a0].
func (s *PoolSuite) TestUpEdgeSymmetry() {
	g := core.NewGraph(2, 1, 5)
	g.WireAuxiliary([][]int{{0, 1}})

	require.Equal(s.T(), 2, g.UnsolvedDownCount(2)) // a0

	_, err := g.NewCheckNode([]int{0}) // solves m0
	require.NoError(s.T(), err)
	g.Resolve(0)
	require.Equal(s.T(), 1, g.UnsolvedDownCount(2)) // reached via m0's up-edge

	_, err = g.NewCheckNode([]int{1}) // solves m1
	require.NoError(s.T(), err)
	g.Resolve(0)
	require.Equal(s.T(), 0, g.UnsolvedDownCount(2)) // reached via m1's up-edge
}

// TestCascadeFanOutToMultipleParents verifies that solving a message node
// referenced by both an auxiliary and a check block decrements both.
func (s *PoolSuite) TestCascadeFanOutToMultipleParents() {
	g := core.NewGraph(2, 1, 2+1+2)
	g.WireAuxiliary([][]int{{0, 1}}) // a0 -> {m0, m1}, u[a0] = 2

	_, _ = g.NewCheckNode([]int{0, 1}) // c0 references both directly, u=2
	_, _ = g.NewCheckNode([]int{0})    // c1 breaks the tie on m0
	_, solved := g.Resolve(0)

	require.NotEmpty(s.T(), solved)
	require.True(s.T(), g.Done())
}

// TestRepeatedIngestDoesNotGrowNodeCountBeyondCapacity confirms ErrCapacity
// is returned rather than silently overwriting state once node space is
// exhausted, even across several already-successful ingests.
func (s *PoolSuite) TestRepeatedIngestDoesNotGrowNodeCountBeyondCapacity() {
	g := core.NewGraph(2, 0, 2+2) // room for exactly two check nodes
	_, err := g.NewCheckNode([]int{0})
	require.NoError(s.T(), err)
	_, err = g.NewCheckNode([]int{1})
	require.NoError(s.T(), err)
	_, err = g.NewCheckNode([]int{0, 1})
	require.ErrorIs(s.T(), err, core.ErrCapacity)
}
