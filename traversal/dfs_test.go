package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
	"github.com/mlcsrgraph/mlcsr/traversal"
)

func TestDFSNilGraph(t *testing.T) {
	_, err := traversal.DFS(nil, 0)
	require.ErrorIs(t, err, traversal.ErrGraphNil)
}

func TestDFSSingleSourceOrdering(t *testing.T) {
	// 0 -> 1 -> 2, 0 -> 3. Depth-first from 0 must exhaust one branch
	// before the other.
	g, err := graph.InMemory(4)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 3)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	res, err := traversal.DFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, []csr.NodeId{0, 1, 2, 3}, res.Order)

	d, ok := res.DepthOf(2)
	require.True(t, ok)
	require.Equal(t, 2, d)
}

func TestDFSPrePostOrderHooks(t *testing.T) {
	g, err := graph.InMemory(3)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	var pre, post []csr.NodeId
	_, err = traversal.DFS(g, 0,
		traversal.WithVisitForward(func(v csr.NodeId) error { pre = append(pre, v); return nil }),
		traversal.WithVisitReverse(func(v csr.NodeId) error { post = append(post, v); return nil }),
	)
	require.NoError(t, err)

	require.Equal(t, []csr.NodeId{0, 1, 2}, pre)
	require.Equal(t, []csr.NodeId{2, 1, 0}, post)
}

func TestDFSForestCoversDisconnectedComponents(t *testing.T) {
	// Two disconnected components: 0->1, and isolated 2.
	g, err := graph.InMemory(3)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	res, err := traversal.DFSForest(g)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, ok := res.DepthOf(csr.NodeId(i))
		require.True(t, ok, "vertex %d should be visited by the forest walk", i)
	}
	require.Equal(t, 3, len(res.Order))
}

func TestDFSNavigatorFiltersEdges(t *testing.T) {
	g, err := graph.InMemory(3)
	require.NoError(t, err)
	blocked, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	res, err := traversal.DFS(g, 0, traversal.WithNavigator(func(_ csr.NodeId, e csr.EdgeId, _ csr.NodeId) bool {
		return e != blocked.ID
	}))
	require.NoError(t, err)

	_, ok := res.DepthOf(1)
	require.False(t, ok)
	_, ok = res.DepthOf(2)
	require.True(t, ok)
}

func TestDFSReverseDirectionWalksInEdges(t *testing.T) {
	g, err := graph.InMemory(3)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	res, err := traversal.DFS(g, 2, traversal.WithReverseDirection())
	require.NoError(t, err)

	d, ok := res.DepthOf(0)
	require.True(t, ok)
	require.Equal(t, 2, d)
}
