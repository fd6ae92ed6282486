package graph

import (
	"math/rand"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/mlstore"
)

// PickRandomNode returns a uniformly random node id among those not
// tombstoned at the newest published level (spec §6's pick_random_node).
// No pack library covers "uniform random index over a dynamic range" —
// this is the one place in the module that reaches straight for
// math/rand, the way the teacher's own benchmark harnesses do
// (bfs/bench_test.go) rather than an engine-internal concern.
func (g *Graph) PickRandomNode() (csr.NodeId, error) {
	if g.maxNodes == 0 {
		return 0, ErrEmptyGraph
	}

	top := g.outStore.TopLevel()
	lvl := g.outStore.LevelAt(top)

	start := rand.Intn(g.maxNodes)
	for i := 0; i < g.maxNodes; i++ {
		v := csr.NodeId((start + i) % g.maxNodes)
		if !nodeTombstoned(lvl, v) {
			return v, nil
		}
	}

	return 0, ErrEmptyGraph
}

func nodeTombstoned(lvl *mlstore.Level, v csr.NodeId) bool {
	if lvl == nil {
		return false
	}
	if int(v) >= lvl.Vertices.Len() {
		return false
	}

	return lvl.Vertices.Get(v).Tombstoned
}
