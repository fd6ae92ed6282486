package traversal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
	"github.com/mlcsrgraph/mlcsr/traversal"
)

// chain builds 0->1->2->...->n-1 and checkpoints once, so every edge is
// published before a traversal test runs against it.
func chain(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := graph.InMemory(n)
	require.NoError(t, err)
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge(csr.NodeId(i), csr.NodeId(i+1))
		require.NoError(t, err)
	}
	require.NoError(t, g.Checkpoint())
	return g
}

func TestBFSNilGraph(t *testing.T) {
	_, err := traversal.BFS(nil, 0)
	require.ErrorIs(t, err, traversal.ErrGraphNil)
}

func TestBFSStartOutOfRange(t *testing.T) {
	g := chain(t, 3)
	_, err := traversal.BFS(g, 99)
	require.ErrorIs(t, err, traversal.ErrStartNotFound)
}

func TestBFSSmallChainDepthAndParent(t *testing.T) {
	g := chain(t, 5)

	res, err := traversal.BFS(g, 0)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		depth, ok := res.DepthOf(csr.NodeId(i))
		require.True(t, ok)
		require.Equal(t, i, depth)
	}

	for i := 1; i < 5; i++ {
		parent, ok := res.ParentOf(csr.NodeId(i))
		require.True(t, ok)
		require.EqualValues(t, i-1, parent)
	}

	_, ok := res.ParentOf(0)
	require.False(t, ok)
	require.Equal(t, 5, len(res.Order))
}

func TestBFSUnreachableVertexHasNoDepth(t *testing.T) {
	g, err := graph.InMemory(3)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	res, err := traversal.BFS(g, 0)
	require.NoError(t, err)

	_, ok := res.DepthOf(2)
	require.False(t, ok)
}

func TestBFSNavigatorFiltersEdges(t *testing.T) {
	// A star: 0 -> {1,2,3}. Block the edge to 2.
	g, err := graph.InMemory(4)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	blocked, err := g.AddEdge(0, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 3)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	res, err := traversal.BFS(g, 0, traversal.WithNavigator(func(_ csr.NodeId, e csr.EdgeId, _ csr.NodeId) bool {
		return e != blocked.ID
	}))
	require.NoError(t, err)

	_, ok := res.DepthOf(1)
	require.True(t, ok)
	_, ok = res.DepthOf(2)
	require.False(t, ok)
	_, ok = res.DepthOf(3)
	require.True(t, ok)
}

func TestBFSReverseDirectionWalksInEdges(t *testing.T) {
	g := chain(t, 4) // 0->1->2->3

	res, err := traversal.BFS(g, 3, traversal.WithReverseDirection())
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		depth, ok := res.DepthOf(csr.NodeId(i))
		require.True(t, ok)
		require.Equal(t, 3-i, depth)
	}
}

func TestBFSSaveChildrenRecordsDownEdges(t *testing.T) {
	g := chain(t, 3) // 0->1->2

	var visitedReverse []csr.NodeId
	res, err := traversal.BFS(g, 0,
		traversal.WithSaveChildren(),
		traversal.WithVisitReverse(func(v csr.NodeId) error {
			visitedReverse = append(visitedReverse, v)
			return nil
		}),
	)
	require.NoError(t, err)

	require.True(t, res.IsDownEdge(0, edgeBetween(t, g, 0, 1)))
	require.True(t, res.IsDownEdge(1, edgeBetween(t, g, 1, 2)))
	require.False(t, res.IsDownEdge(0, edgeBetween(t, g, 1, 2)))

	// ReversePass visits last level first.
	require.Equal(t, []csr.NodeId{2, 1, 0}, visitedReverse)
}

func TestBFSLargeFrontierCrossesQueueThreshold(t *testing.T) {
	// A star with 200 leaves forces next_count past smallToQueueAt (128)
	// in a single round, exercising the SMALL->QUEUE transition.
	const leaves = 200
	g, err := graph.InMemory(leaves + 1)
	require.NoError(t, err)
	for i := 1; i <= leaves; i++ {
		_, err := g.AddEdge(0, csr.NodeId(i))
		require.NoError(t, err)
	}
	require.NoError(t, g.Checkpoint())

	res, err := traversal.BFS(g, 0, traversal.WithMultiThread(4))
	require.NoError(t, err)

	for i := 1; i <= leaves; i++ {
		depth, ok := res.DepthOf(csr.NodeId(i))
		require.True(t, ok)
		require.Equal(t, 1, depth)
	}
	require.Equal(t, leaves+1, len(res.Order))
}

func TestBFSContextCancellation(t *testing.T) {
	g := chain(t, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := traversal.BFS(g, 0, traversal.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func edgeBetween(t *testing.T, g *graph.Graph, src, dst csr.NodeId) csr.EdgeId {
	t.Helper()
	it := g.OutIter(src)
	for {
		ent, ok := it.Next()
		if !ok {
			t.Fatalf("no edge %d->%d", src, dst)
		}
		if ent.Target == dst {
			return ent.Edge
		}
	}
}
