package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
)

func outTargets(t *testing.T, g *graph.Graph, v csr.NodeId) []csr.NodeId {
	t.Helper()
	var out []csr.NodeId
	it := g.OutIter(v)
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, e.Target)
	}
	return out
}

func inTargets(t *testing.T, g *graph.Graph, v csr.NodeId) []csr.NodeId {
	t.Helper()
	var out []csr.NodeId
	it := g.InIter(v)
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, e.Target)
	}
	return out
}

func TestAddEdgeInvisibleUntilCheckpoint(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)

	require.Equal(t, 0, g.OutDegree(0))
	require.NoError(t, g.Checkpoint())
	require.Equal(t, 1, g.OutDegree(0))
	require.Equal(t, []csr.NodeId{1}, outTargets(t, g, 0))
}

func TestCheckpointMirrorsInDirection(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	require.Equal(t, 2, g.InDegree(2))
	require.ElementsMatch(t, []csr.NodeId{0, 1}, inTargets(t, g, 2))
}

func TestDeleteEdgeAcrossCheckpointHidesBothDirections(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)

	ref, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	require.Equal(t, 1, g.OutDegree(0))
	require.Equal(t, 1, g.InDegree(1))

	require.NoError(t, g.DeleteEdge(ref))
	require.NoError(t, g.Checkpoint())

	require.Equal(t, 0, g.OutDegree(0))
	require.Equal(t, 0, g.InDegree(1))
	require.Empty(t, outTargets(t, g, 0))
	require.Empty(t, inTargets(t, g, 1))
}

func TestDeleteNodeHidesOwnOutAndInAdjacency(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)

	// 0->1 and 1->0, so node 1 has both a live out-edge and a live
	// in-edge before it is tombstoned.
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	require.NoError(t, g.DeleteNode(1))
	require.NoError(t, g.Checkpoint())

	// "in-edges into v from other nodes are also hidden": node 1's own
	// out/in adjacency both read empty once it is tombstoned.
	require.Equal(t, 0, g.OutDegree(1))
	require.Equal(t, 0, g.InDegree(1))
	require.Empty(t, outTargets(t, g, 1))
	require.Empty(t, inTargets(t, g, 1))

	// node 0 is untouched directly: its own out-degree still reflects the
	// edge it holds toward the now-tombstoned node 1.
	require.Equal(t, 1, g.OutDegree(0))
}

func TestNodePropertyRoundTripsAcrossCheckpoint(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)
	require.NoError(t, g.RegisterNodeColumnU32("rank"))

	require.NoError(t, g.SetNodePropertyU32("rank", 2, 7))
	require.NoError(t, g.Checkpoint())

	v, err := g.NodePropertyU32("rank", 2)
	require.NoError(t, err)
	require.EqualValues(t, 7, v)

	// A node nobody ever wrote to still reads as the zero value.
	v, err = g.NodePropertyU32("rank", 1)
	require.NoError(t, err)
	require.EqualValues(t, 0, v)
}

func TestNodePropertyCarriesForwardAcrossUntouchedCheckpoint(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)
	require.NoError(t, g.RegisterNodeColumnU64("score"))

	require.NoError(t, g.SetNodePropertyU64("score", 0, 99))
	require.NoError(t, g.Checkpoint())

	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	v, err := g.NodePropertyU64("score", 0)
	require.NoError(t, err)
	require.EqualValues(t, 99, v)
}

func TestEdgePropertyRejectsUnpublishedEdge(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)
	require.NoError(t, g.RegisterEdgeColumnU32("weight"))

	ref, err := g.AddEdge(0, 1)
	require.NoError(t, err)

	err = g.SetEdgePropertyU32("weight", ref.ID, 5)
	require.Error(t, err)
}

func TestEdgePropertyRoundTripsAfterCheckpoint(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)
	require.NoError(t, g.RegisterEdgeColumnU32("weight"))

	ref, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	require.NoError(t, g.SetEdgePropertyU32("weight", ref.ID, 42))
	require.NoError(t, g.Checkpoint())

	v, err := g.EdgePropertyU32("weight", ref.ID)
	require.NoError(t, err)
	require.EqualValues(t, 42, v)
}

func TestUnknownPropertyNameRejected(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)

	_, err = g.NodePropertyU32("missing", 0)
	require.ErrorIs(t, err, graph.ErrUnknownProperty)
}

func TestDuplicateColumnRegistrationRejected(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)

	require.NoError(t, g.RegisterNodeColumnU32("rank"))
	require.ErrorIs(t, g.RegisterNodeColumnU32("rank"), graph.ErrDuplicateProperty)
}

func TestPickRandomNodeSkipsTombstoned(t *testing.T) {
	g, err := graph.InMemory(2)
	require.NoError(t, err)

	require.NoError(t, g.DeleteNode(0))
	require.NoError(t, g.Checkpoint())

	for i := 0; i < 20; i++ {
		v, err := g.PickRandomNode()
		require.NoError(t, err)
		require.EqualValues(t, 1, v)
	}
}

func TestPickRandomNodeAllTombstonedIsEmptyGraph(t *testing.T) {
	g, err := graph.InMemory(1)
	require.NoError(t, err)

	require.NoError(t, g.DeleteNode(0))
	require.NoError(t, g.Checkpoint())

	_, err = g.PickRandomNode()
	require.ErrorIs(t, err, graph.ErrEmptyGraph)
}
