package traversal

import "github.com/mlcsrgraph/mlcsr/csr"

// ReversePass walks res's levels from the last back to 0, calling visit on
// every vertex at that level — using the stored queue slice where Result
// recorded one (levels processed in a queue-like state), or scanning Depth
// directly where it didn't (levels processed by a scan-like state, spec
// §4.8: "the bitmap scan otherwise"). Typically used with WithSaveChildren
// so visit can consult res.IsDownEdge to walk only BFS-DAG edges.
func ReversePass(res *Result, maxNodes int, visit VisitFunc) error {
	for level := len(res.levelCount) - 1; level >= 0; level-- {
		begin := res.levelQueueBegin[level]
		if begin >= 0 {
			end := begin + res.levelCount[level]
			for _, v := range res.queue[begin:end] {
				if err := visit(v); err != nil {
					return err
				}
			}
			continue
		}

		for v := 0; v < maxNodes; v++ {
			if res.Depth[v] != int32(level) {
				continue
			}
			if err := visit(csr.NodeId(v)); err != nil {
				return err
			}
		}
	}

	return nil
}
