package triangle_test

import (
	"fmt"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
	"github.com/mlcsrgraph/mlcsr/triangle"
)

// ExampleCount counts triangles in K_5, loaded undirected-ordered.
func ExampleCount() {
	g, err := graph.InMemory(5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for u := 0; u < 5; u++ {
		for v := u + 1; v < 5; v++ {
			g.AddEdge(csr.NodeId(u), csr.NodeId(v))
		}
	}
	if err := g.Checkpoint(); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := triangle.Count(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Count)
	// Output:
	// 10
}
