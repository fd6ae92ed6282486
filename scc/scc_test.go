package scc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
	"github.com/mlcsrgraph/mlcsr/scc"
)

func TestFindNilGraph(t *testing.T) {
	_, err := scc.Find(nil)
	require.ErrorIs(t, err, scc.ErrGraphNil)
}

// TestFindMatchesScenario reproduces S6: edges {(0,1),(1,2),(2,0),(3,4),
// (4,3),(5,3)} partition into {{0,1,2},{3,4},{5}}.
func TestFindMatchesScenario(t *testing.T) {
	g, err := graph.InMemory(6)
	require.NoError(t, err)
	for _, e := range [][2]csr.NodeId{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 3}, {5, 3}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.Checkpoint())

	res, err := scc.Find(g)
	require.NoError(t, err)
	require.Equal(t, 3, res.Count)

	c0, ok := res.ComponentOf(0)
	require.True(t, ok)
	c1, _ := res.ComponentOf(1)
	c2, _ := res.ComponentOf(2)
	require.Equal(t, c0, c1)
	require.Equal(t, c0, c2)

	c3, _ := res.ComponentOf(3)
	c4, _ := res.ComponentOf(4)
	require.Equal(t, c3, c4)
	require.NotEqual(t, c0, c3)

	c5, _ := res.ComponentOf(5)
	require.NotEqual(t, c5, c3)
	require.NotEqual(t, c5, c0)

	require.ElementsMatch(t, []csr.NodeId{0, 1, 2}, res.Members(c0))
	require.ElementsMatch(t, []csr.NodeId{3, 4}, res.Members(c3))
	require.ElementsMatch(t, []csr.NodeId{5}, res.Members(c5))
}

func TestFindAllIsolatedVerticesAreSingletonComponents(t *testing.T) {
	g, err := graph.InMemory(3)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	res, err := scc.Find(g)
	require.NoError(t, err)
	require.Equal(t, 3, res.Count)
}

func TestFindEmptyGraph(t *testing.T) {
	g, err := graph.InMemory(0)
	require.NoError(t, err)

	res, err := scc.Find(g)
	require.NoError(t, err)
	require.Zero(t, res.Count)
}
