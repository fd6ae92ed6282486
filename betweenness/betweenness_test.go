package betweenness_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlcsrgraph/mlcsr/betweenness"
	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
)

func TestComputeNilGraph(t *testing.T) {
	_, err := betweenness.Compute(nil)
	require.ErrorIs(t, err, betweenness.ErrGraphNil)
}

func TestComputeEmptyGraph(t *testing.T) {
	g, err := graph.InMemory(0)
	require.NoError(t, err)

	res, err := betweenness.Compute(g)
	require.NoError(t, err)
	require.Empty(t, res.Scores)
}

// TestComputeLineGraphMiddleVertexIsCentral reproduces the textbook
// 0->1->2 line: every shortest path between 0 and 2 passes through 1,
// so 1 alone carries a positive score.
func TestComputeLineGraphMiddleVertexIsCentral(t *testing.T) {
	g, err := graph.InMemory(3)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	res, err := betweenness.Compute(g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, res.ScoreOf(1), 1e-9)
	require.InDelta(t, 0.0, res.ScoreOf(0), 1e-9)
	require.InDelta(t, 0.0, res.ScoreOf(2), 1e-9)
}

// TestComputeDiamondSplitsCreditBetweenBranches: 0->1->3, 0->2->3 gives
// two equal-length shortest paths from 0 to 3, so each of 1 and 2 carries
// half the dependency credit.
func TestComputeDiamondSplitsCreditBetweenBranches(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)
	for _, e := range [][2]csr.NodeId{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.Checkpoint())

	res, err := betweenness.Compute(g)
	require.NoError(t, err)
	require.InDelta(t, 0.5, res.ScoreOf(1), 1e-9)
	require.InDelta(t, 0.5, res.ScoreOf(2), 1e-9)
	require.InDelta(t, 0.0, res.ScoreOf(0), 1e-9)
	require.InDelta(t, 0.0, res.ScoreOf(3), 1e-9)
}

func TestComputeIsolatedVerticesScoreZero(t *testing.T) {
	g, err := graph.InMemory(3)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	res, err := betweenness.Compute(g)
	require.NoError(t, err)
	for v := range res.Scores {
		require.Zero(t, res.ScoreOf(v))
	}
}

// TestComputeParallelMatchesSequential checks that splitting sources
// across workers doesn't change the totals.
func TestComputeParallelMatchesSequential(t *testing.T) {
	g, err := graph.InMemory(4)
	require.NoError(t, err)
	for _, e := range [][2]csr.NodeId{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.Checkpoint())

	seq, err := betweenness.Compute(g)
	require.NoError(t, err)
	par, err := betweenness.Compute(g, betweenness.WithWorkers(4))
	require.NoError(t, err)

	for v := range seq.Scores {
		require.InDelta(t, seq.ScoreOf(v), par.ScoreOf(v), 1e-9)
	}
}

func TestComputeNormalizeScales(t *testing.T) {
	g, err := graph.InMemory(3)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2)
	require.NoError(t, err)
	require.NoError(t, g.Checkpoint())

	raw, err := betweenness.Compute(g)
	require.NoError(t, err)
	norm, err := betweenness.Compute(g, betweenness.WithNormalize(true))
	require.NoError(t, err)

	require.InDelta(t, raw.ScoreOf(1)/2.0, norm.ScoreOf(1), 1e-9)
}
