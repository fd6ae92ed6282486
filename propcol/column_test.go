package propcol_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/propcol"
)

func TestColumnVersionedReadsAndDefaults(t *testing.T) {
	col, err := propcol.NewColumn[uint32]("rank", propcol.TypeU32, 4)
	require.NoError(t, err)

	// Level 0: node 0 -> 10, node 1 -> 20.
	b := col.NewSegment(2)
	b.SetInBuilder(0, 10)
	b.SetInBuilder(1, 20)
	b.Finish()

	require.EqualValues(t, 10, col.GetNode(0, 0))
	require.EqualValues(t, 20, col.GetNode(0, 1))

	// Absent property at a level that doesn't exist yet reads as zero.
	require.EqualValues(t, 0, col.GetNode(1, 0))

	// Level 1: share unchanged from level 0.
	col.ShareSegment(0)
	require.EqualValues(t, 10, col.GetNode(1, 0))
	require.EqualValues(t, 20, col.GetNode(1, 1))

	// Local index beyond segment length reads as zero, not a panic.
	require.EqualValues(t, 0, col.GetNode(0, 99))
}

func TestEdgeColumnKeyedByEdgeId(t *testing.T) {
	col, err := propcol.NewColumn[uint64]("weight", propcol.TypeU64, 4)
	require.NoError(t, err)

	b := col.NewSegment(1)
	b.SetInBuilder(0, 777)
	b.Finish()

	e := csr.EdgeId{Lvl: 0, Idx: 0}
	require.EqualValues(t, 777, col.GetEdge(e))

	writable := csr.EdgeId{Lvl: csr.WritableLevel, Idx: 0}
	require.EqualValues(t, 0, col.GetEdge(writable))
}

func TestFinishIntoMutatesOriginLevelSegmentInPlace(t *testing.T) {
	col, err := propcol.NewColumn[uint32]("weight", propcol.TypeU32, 4)
	require.NoError(t, err)

	// Level 0 has two edges, neither tagged yet.
	b0 := col.NewSegment(2)
	b0.Finish()
	require.EqualValues(t, 0, col.GetEdge(csr.EdgeId{Lvl: 0, Idx: 0}))

	// A later checkpoint (level 2, say) tags edge (0,1) with a value. This
	// must land back at level 0 — the edge's own origin level — not at a
	// new top-level slot.
	length := col.SegmentLength(0)
	require.Equal(t, 2, length)
	b1 := col.NewSegment(length)
	b1.SetInBuilder(0, col.GetEdge(csr.EdgeId{Lvl: 0, Idx: 0}))
	b1.SetInBuilder(1, 42)
	b1.FinishInto(0)

	require.EqualValues(t, 42, col.GetEdge(csr.EdgeId{Lvl: 0, Idx: 1}))
	require.EqualValues(t, 0, col.GetEdge(csr.EdgeId{Lvl: 0, Idx: 0}))

	// Growing past the original length extends the segment in place too.
	b2 := col.NewSegment(4)
	for i := 0; i < 2; i++ {
		b2.SetInBuilder(i, col.GetEdge(csr.EdgeId{Lvl: 0, Idx: uint32(i)}))
	}
	b2.SetInBuilder(3, 99)
	b2.FinishInto(0)

	require.EqualValues(t, 42, col.GetEdge(csr.EdgeId{Lvl: 0, Idx: 1}))
	require.EqualValues(t, 99, col.GetEdge(csr.EdgeId{Lvl: 0, Idx: 3}))
}
