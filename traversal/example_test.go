package traversal_test

import (
	"fmt"

	"github.com/mlcsrgraph/mlcsr/csr"
	"github.com/mlcsrgraph/mlcsr/graph"
	"github.com/mlcsrgraph/mlcsr/traversal"
)

// ExampleBFS builds a small star graph and prints BFS visit order.
func ExampleBFS() {
	g, err := graph.InMemory(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	if err := g.Checkpoint(); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := traversal.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2 3]
}

// ExampleDFSForest visits every component of a disconnected graph.
func ExampleDFSForest() {
	g, err := graph.InMemory(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g.AddEdge(0, 1)
	g.AddEdge(2, 3)
	if err := g.Checkpoint(); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := traversal.DFSForest(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2 3]
}

// ExampleBFS_navigator demonstrates filtering out an edge so its target is
// never reached.
func ExampleBFS_navigator() {
	g, err := graph.InMemory(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	blocked, _ := g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	if err := g.Checkpoint(); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := traversal.BFS(g, 0, traversal.WithNavigator(func(_ csr.NodeId, e csr.EdgeId, _ csr.NodeId) bool {
		return e != blocked.ID
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 2]
}
