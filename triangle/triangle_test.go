package triangle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
	"github.com/mlcsrgraph/mlcsr/triangle"
)

// completeGraph builds K_n loaded undirected-ordered: every edge (u,v)
// with u<v stored exactly once.
func completeGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g, err := graph.InMemory(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			_, err := g.AddEdge(csr.NodeId(u), csr.NodeId(v))
			require.NoError(t, err)
		}
	}
	require.NoError(t, g.Checkpoint())

	return g
}

func TestCountNilGraph(t *testing.T) {
	_, err := triangle.Count(nil)
	require.ErrorIs(t, err, triangle.ErrGraphNil)
}

// TestCountCompleteGraphMatchesScenario reproduces S4: K_5 has C(5,3)=10
// triangles.
func TestCountCompleteGraphMatchesScenario(t *testing.T) {
	g := completeGraph(t, 5)

	res, err := triangle.Count(g)
	require.NoError(t, err)
	require.EqualValues(t, 10, res.Count)
}

func TestCountNoTrianglesInPath(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	res, err := triangle.Count(g)
	require.NoError(t, err)
	require.Zero(t, res.Count)
}

// TestCountIndependentOfCrossoverRatio verifies the spec's invariant: the
// merge-scan branch and the binary-search-probe branch must agree
// regardless of where the crossover threshold sits.
func TestCountIndependentOfCrossoverRatio(t *testing.T) {
	g := completeGraph(t, 6)

	alwaysMerge, err := triangle.Count(g, triangle.WithCrossoverRatio(1_000_000))
	require.NoError(t, err)
	alwaysProbe, err := triangle.Count(g, triangle.WithCrossoverRatio(1))
	require.NoError(t, err)

	require.Equal(t, alwaysMerge.Count, alwaysProbe.Count)
	require.EqualValues(t, 20, alwaysMerge.Count) // C(6,3)
}
